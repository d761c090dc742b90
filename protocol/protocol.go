// Package protocol holds the IKEv2 registry numbers and the wire codec for
// the KE payload produced and consumed by the key exchange engine.
// https://www.iana.org/assignments/ikev2-parameters/ikev2-parameters.xhtml
package protocol

type PayloadType uint8

const (
	PayloadTypeNone  PayloadType = 0  // [RFC7296]
	PayloadTypeSA    PayloadType = 33 // [RFC7296]
	PayloadTypeKE    PayloadType = 34 // [RFC7296]
	PayloadTypeNonce PayloadType = 40 // [RFC7296]
	PayloadTypeN     PayloadType = 41 // [RFC7296]
)

type TransformType uint8

const (
	TRANSFORM_TYPE_ENCR  TransformType = 1 // IKE and ESP
	TRANSFORM_TYPE_PRF   TransformType = 2 // IKE
	TRANSFORM_TYPE_INTEG TransformType = 3 // IKE, AH & optional ESP
	TRANSFORM_TYPE_DH    TransformType = 4 // IKE, optional AH & ESP
	TRANSFORM_TYPE_ESN   TransformType = 5 // AH & ESP
)

type DhTransformId uint16

const (
	MODP_NONE DhTransformId = 0 // [RFC7296]
	MODP_768  DhTransformId = 1 // [RFC6989], Sec. 2.1	[RFC7296]
	MODP_1024 DhTransformId = 2 // [RFC6989], Sec. 2.1	[RFC7296]
	// 3-4	Reserved		[RFC7296]
	MODP_1536 DhTransformId = 5 // [RFC6989], Sec. 2.1	[RFC3526]
	// 6-13	Unassigned		[RFC7296]
	MODP_2048 DhTransformId = 14 // [RFC6989], Sec. 2.1	[RFC3526]
	MODP_3072 DhTransformId = 15 // [RFC6989], Sec. 2.1	[RFC3526]
	MODP_4096 DhTransformId = 16 // [RFC6989], Sec. 2.1	[RFC3526]
	MODP_6144 DhTransformId = 17 // [RFC6989], Sec. 2.1	[RFC3526]
	MODP_8192 DhTransformId = 18 // [RFC6989], Sec. 2.1	[RFC3526]
	ECP_256   DhTransformId = 19 // [RFC6989], Sec. 2.3	[RFC5903]
	ECP_384   DhTransformId = 20 // [RFC6989], Sec. 2.3	[RFC5903]
	ECP_521   DhTransformId = 21 // [RFC6989], Sec. 2.3	[RFC5903]
)

type NotificationType uint16

// notification error types
const (
	UNSUPPORTED_CRITICAL_PAYLOAD NotificationType = 1  // [RFC7296]
	INVALID_SYNTAX               NotificationType = 7  // [RFC7296]
	NO_PROPOSAL_CHOSEN           NotificationType = 14 // [RFC7296]
	INVALID_KE_PAYLOAD           NotificationType = 17 // [RFC7296]
)

// IkeErrorCode is a protocol error that maps onto an outgoing notification
type IkeErrorCode NotificationType

const (
	ERR_INVALID_SYNTAX     = IkeErrorCode(INVALID_SYNTAX)
	ERR_NO_PROPOSAL_CHOSEN = IkeErrorCode(NO_PROPOSAL_CHOSEN)
	ERR_INVALID_KE_PAYLOAD = IkeErrorCode(INVALID_KE_PAYLOAD)
)

func (e IkeErrorCode) Error() string {
	return NotificationType(e).String()
}
