// Command txscan stands in for the hardware host: it feeds a raw
// envelope buffer through the core decoder and formatter and prints
// every caption/value pair the device screen would show, in order.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/withobsrvr/txscan/internal/core"
	"github.com/withobsrvr/txscan/internal/plugin"
)

func main() {
	envelopePath := flag.String("envelope", "", "path to a raw envelope buffer (network id hash + type tag + body)")
	signingKeyHex := flag.String("signing-key", "", "hex-encoded 32-byte Ed25519 public key to abbreviate matching source accounts for")
	displaySequence := flag.Bool("sequence", false, "include the transaction sequence number in the header")
	withTokenPlugin := flag.Bool("token-plugin", false, "recognize SEP-41 transfer/approve calls and label their arguments")
	tokenSuffix := flag.String("token-suffix", "", "asset code suffix appended to amounts the token plugin renders")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *envelopePath == "" {
		logger.Fatal("missing required flag", zap.String("flag", "-envelope"))
	}

	buf, err := os.ReadFile(*envelopePath)
	if err != nil {
		logger.Fatal("failed to read envelope file", zap.String("path", *envelopePath), zap.Error(err))
	}

	var signingKey []byte
	if *signingKeyHex != "" {
		signingKey, err = hex.DecodeString(*signingKeyHex)
		if err != nil || len(signingKey) != 32 {
			logger.Fatal("signing key must be 32 bytes of hex", zap.String("value", *signingKeyHex))
		}
	}

	var registry *plugin.Registry
	if *withTokenPlugin {
		registry = plugin.NewRegistry(&plugin.TokenPlugin{Suffix: *tokenSuffix})
	}

	env, err := core.ParseTransaction(buf, signingKey, *displaySequence, registry)
	if err != nil {
		logger.Fatal("failed to decode envelope", zap.Error(err))
	}

	logger.Info("decoded envelope",
		zap.Int("bytes", len(buf)),
		zap.Uint32("type", uint32(env.Decoded.Type)),
	)

	for {
		pair, ok, isOpHeader, err := env.NextData(true)
		if err != nil {
			logger.Fatal("formatter error", zap.Error(err))
		}
		if !ok {
			break
		}
		if isOpHeader {
			fmt.Println("---")
		}
		fmt.Printf("%-20s %s\n", pair.Caption, pair.Value)
	}
}
