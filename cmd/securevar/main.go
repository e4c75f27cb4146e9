package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "inspect":
		err = runInspect(ctx, args[1:], stdout, stderr)
	case "set":
		err = runSet(ctx, args[1:], stdout, stderr)
	case "get":
		err = runGet(ctx, args[1:], stdout, stderr)
	case "ls":
		err = runLs(ctx, args[1:], stdout, stderr)
	case "rm":
		err = runRm(ctx, args[1:], stdout, stderr)
	case "keyring":
		err = runKeyring(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		printUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: securevar <command> [flags] [args]

Commands:
  inspect <json>        Show plaintext and encrypted envelopes of a value
  set <name> <json>     Store a value in the vault
  get <name>            Print a stored value
  ls                    List stored values
  rm <name>             Remove a stored value
  keyring save|delete|status
                        Manage the vault password in the OS keyring

Flags:
  -s, -store <path>     Vault file (SECUREVAR_STORE, default securevar.db)
  -a, -algorithm <id>   Cipher algorithm (SECUREVAR_ALGORITHM, default aes-256-cbc)
  -c, -codec <name>     json, yaml, msgpack, bson or xml (SECUREVAR_CODEC)
  -log-level <level>    zerolog level (SECUREVAR_LOG_LEVEL, default warn)
  -p                    Encrypt with a password (SECUREVAR_PASSWORD, keyring or prompt)
`)
}
