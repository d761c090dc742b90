// modp-kex runs both sides of a MODP Diffie-Hellman exchange in process and
// reports whether the secrets agree. Handy for smoke testing a build and for
// timing the larger groups.
package main

import (
	"bytes"
	"crypto/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/modpsec/ike"
	"github.com/modpsec/ike/protocol"
)

func main() {
	app := &cli.App{
		Name:  "modp-kex",
		Usage: "exercise one IKE MODP key exchange locally",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "group",
				Aliases: []string{"g"},
				Value:   "MODP_2048",
				Usage:   "DH group name, MODP_768 through MODP_8192",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log at debug level",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(c *cli.Context) error {
	log := logrus.New()
	if c.Bool("debug") {
		log.SetLevel(logrus.DebugLevel)
	}
	id, ok := protocol.DhTransformIdByName(c.String("group"))
	if !ok {
		return errors.Errorf("unknown group %q", c.String("group"))
	}
	return runExchange(id, log)
}

func runExchange(id protocol.DhTransformId, log *logrus.Logger) error {
	start := time.Now()
	initiator, err := ike.NewKeyExchange(id, rand.Reader)
	if err != nil {
		return err
	}
	defer initiator.Destroy()
	responder, err := ike.NewKeyExchange(id, rand.Reader)
	if err != nil {
		return err
	}
	defer responder.Destroy()

	// initiator KEi -> responder, responder KEr -> initiator, through the
	// wire codec so the fixed-width payload path gets exercised too
	kei := &protocol.KePayload{}
	if err := kei.Decode(initiator.KePayload().Encode()); err != nil {
		return err
	}
	if err := responder.SetKePayload(kei); err != nil {
		return err
	}
	ker := &protocol.KePayload{}
	if err := ker.Decode(responder.KePayload().Encode()); err != nil {
		return err
	}
	if err := initiator.SetKePayload(ker); err != nil {
		return err
	}

	secretI, err := initiator.SharedSecret()
	if err != nil {
		return err
	}
	secretR, err := responder.SharedSecret()
	if err != nil {
		return err
	}
	if !bytes.Equal(secretI, secretR) {
		return errors.Errorf("%s: shared secrets disagree", id)
	}
	log.WithFields(logrus.Fields{
		"group":   id.String(),
		"width":   len(secretI),
		"elapsed": time.Since(start),
	}).Info("key exchange agreed")
	log.Debugf("public value %d bytes, secret %d bytes",
		len(initiator.PublicValue()), len(secretI))
	return nil
}
