// Command scryptkdf derives raw keys and hashes/verifies passwords using
// scrypt, and can optionally serve its Prometheus metrics over HTTP.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/opd-ai/scryptkdf/pwhash"
	"github.com/opd-ai/scryptkdf/scrypt"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "scryptkdf: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck
	pwhash.Logger = log

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "derive":
		runDerive(os.Args[2:], log)
	case "hash":
		runHash(os.Args[2:], log)
	case "verify":
		runVerify(os.Args[2:], log)
	case "serve":
		runServe(os.Args[2:], log)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: scryptkdf <derive|hash|verify|serve> [flags]")
}

func runDerive(args []string, log *zap.Logger) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	password := fs.String("password", "", "passphrase to derive from")
	salt := fs.String("salt", "", "salt (raw bytes of this string)")
	costFactor := fs.Int("cost", pwhash.DefaultCostFactor, "log2(N) cost factor")
	r := fs.Int("r", pwhash.DefaultR, "block-size factor r")
	p := fs.Int("p", pwhash.DefaultP, "parallelization factor p")
	keyLen := fs.Int("length", 32, "derived key length in bytes")
	fs.Parse(args) //nolint:errcheck

	dk, err := scrypt.Key([]byte(*password), []byte(*salt), *costFactor, *r, *p, *keyLen)
	if err != nil {
		log.Error("derive failed", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(dk))
}

func runHash(args []string, log *zap.Logger) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	password := fs.String("password", "", "passphrase to hash")
	costFactor := fs.Int("cost", pwhash.DefaultCostFactor, "log2(N) cost factor")
	r := fs.Int("r", pwhash.DefaultR, "block-size factor r")
	p := fs.Int("p", pwhash.DefaultP, "parallelization factor p")
	fs.Parse(args) //nolint:errcheck

	encoded, err := pwhash.HashPasswordParams(*password, *costFactor, *r, *p)
	if err != nil {
		log.Error("hash failed", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(encoded)
}

func runVerify(args []string, log *zap.Logger) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	password := fs.String("password", "", "passphrase to check")
	hash := fs.String("hash", "", "hash record to check against")
	fs.Parse(args) //nolint:errcheck

	if pwhash.CheckPassword(*password, *hash) {
		fmt.Println("ok")
		return
	}
	fmt.Println("mismatch")
	os.Exit(1)
}

func runServe(args []string, log *zap.Logger) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "127.0.0.1:9140", "address to serve /metrics on")
	fs.Parse(args) //nolint:errcheck

	http.Handle("/metrics", promhttp.Handler())
	log.Info("serving metrics", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, nil); err != nil { //nolint:gosec
		log.Error("metrics server exited", zap.Error(err))
		os.Exit(1)
	}
}
