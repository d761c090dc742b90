package protocol

import "fmt"

func (p PayloadType) String() string {
	switch p {
	case PayloadTypeNone:
		return "None"
	case PayloadTypeSA:
		return "SA"
	case PayloadTypeKE:
		return "KE"
	case PayloadTypeNonce:
		return "No"
	case PayloadTypeN:
		return "N"
	default:
		return "Unknown"
	}
}

func (p TransformType) String() string {
	switch p {
	case TRANSFORM_TYPE_ENCR:
		return "ENCR"
	case TRANSFORM_TYPE_PRF:
		return "PRF"
	case TRANSFORM_TYPE_INTEG:
		return "INTEG"
	case TRANSFORM_TYPE_DH:
		return "DH"
	case TRANSFORM_TYPE_ESN:
		return "ESN"
	default:
		return "Unknown"
	}
}

var dhTransformNames = map[DhTransformId]string{
	MODP_NONE: "MODP_NONE",
	MODP_768:  "MODP_768",
	MODP_1024: "MODP_1024",
	MODP_1536: "MODP_1536",
	MODP_2048: "MODP_2048",
	MODP_3072: "MODP_3072",
	MODP_4096: "MODP_4096",
	MODP_6144: "MODP_6144",
	MODP_8192: "MODP_8192",
	ECP_256:   "ECP_256",
	ECP_384:   "ECP_384",
	ECP_521:   "ECP_521",
}

func (t DhTransformId) String() string {
	if name, ok := dhTransformNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DH(%d)", uint16(t))
}

// DhTransformIdByName is the reverse of String, for config & cli use
func DhTransformIdByName(name string) (DhTransformId, bool) {
	for id, n := range dhTransformNames {
		if n == name {
			return id, true
		}
	}
	return MODP_NONE, false
}

func (n NotificationType) String() string {
	switch n {
	case UNSUPPORTED_CRITICAL_PAYLOAD:
		return "UNSUPPORTED_CRITICAL_PAYLOAD"
	case INVALID_SYNTAX:
		return "INVALID_SYNTAX"
	case NO_PROPOSAL_CHOSEN:
		return "NO_PROPOSAL_CHOSEN"
	case INVALID_KE_PAYLOAD:
		return "INVALID_KE_PAYLOAD"
	default:
		return fmt.Sprintf("Notification(%d)", uint16(n))
	}
}
