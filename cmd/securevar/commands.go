package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/zoobzio/securevar"
	"github.com/zoobzio/securevar/internal/config"
	"github.com/zoobzio/securevar/internal/inspect"
	"github.com/zoobzio/securevar/internal/logger"
	"github.com/zoobzio/securevar/internal/prompt"
	"github.com/zoobzio/securevar/internal/store"
)

// passwordReader prompts for passwords. Tests replace it.
var passwordReader = prompt.Stdin

// session bundles what every command needs after flag parsing.
type session struct {
	cfg  *config.Config
	args []string
}

// setup parses flags, loads the configuration and returns ctx carrying the
// command's logger.
func setup(ctx context.Context, name string, args []string, stderr io.Writer) (context.Context, *session, error) {
	fs := newFlagSet(name, stderr)
	flags := config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return ctx, nil, err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return ctx, nil, err
	}

	log := logger.New(stderr, "cli", cfg.LogLevel)
	log.Debug().
		Str("command", name).
		Str("store", cfg.Store).
		Str("algorithm", cfg.Algorithm).
		Str("codec", cfg.Codec).
		Msg("configuration loaded")

	return log.WithContext(ctx), &session{cfg: cfg, args: fs.Args()}, nil
}

// resolver returns the password sources for the vault.
func (e *session) resolver() prompt.Resolver {
	account, err := filepath.Abs(e.cfg.Store)
	if err != nil {
		account = e.cfg.Store
	}
	return prompt.Resolver{
		Password: e.cfg.Password,
		Account:  account,
		Read:     passwordReader(),
	}
}

// writePassword returns the password for a write, or "" when the value
// should be stored in plaintext.
func (e *session) writePassword() (string, error) {
	if !e.cfg.Encrypt && e.cfg.Password == "" {
		return "", nil
	}
	return e.resolver().Resolve("Enter password: ")
}

func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func runInspect(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	ctx, e, err := setup(ctx, "inspect", args, stderr)
	if err != nil {
		return err
	}
	if len(e.args) != 1 {
		return errors.New("usage: securevar inspect [flags] <json>")
	}
	if err := e.cfg.CheckUntyped(); err != nil {
		return err
	}

	value := parseValue(e.args[0])
	varCfg := e.cfg.Variable()

	plain, err := securevar.From(ctx, value, "", nil, varCfg)
	if err != nil {
		return err
	}
	plainRead, err := plain.Read(ctx, "", nil)
	if err != nil {
		return err
	}
	if err := inspect.Fprint(stdout, "Plain Text", plain, plainRead); err != nil {
		return err
	}

	password, err := e.writePassword()
	if err != nil {
		return err
	}
	if password == "" {
		logger.FromContext(ctx).Debug().Msg("no password, skipping encrypted envelope")
		return nil
	}

	enc, err := securevar.From(ctx, value, password, nil, varCfg)
	if err != nil {
		return err
	}
	encRead, err := enc.Read(ctx, password, nil)
	if err != nil {
		return err
	}
	return inspect.Fprint(stdout, "Encrypted", enc, encRead)
}

func runSet(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	ctx, e, err := setup(ctx, "set", args, stderr)
	if err != nil {
		return err
	}
	if len(e.args) != 2 {
		return errors.New("usage: securevar set [flags] <name> <json>")
	}
	if err := e.cfg.CheckUntyped(); err != nil {
		return err
	}
	name, raw := e.args[0], e.args[1]

	password, err := e.writePassword()
	if err != nil {
		return err
	}

	v, err := securevar.From(ctx, parseValue(raw), password, nil, e.cfg.Variable())
	if err != nil {
		return err
	}

	s, err := store.Open(e.cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Put(name, v.Export(), string(v.Algorithm()), e.cfg.Codec); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("name", name).
		Bool("encrypted", v.IsEncrypted()).
		Int("size", len(v.Export())).
		Msg("variable stored")
	fmt.Fprintf(stdout, "Stored %s\n", name)
	return nil
}

func runGet(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	ctx, e, err := setup(ctx, "get", args, stderr)
	if err != nil {
		return err
	}
	if len(e.args) != 1 {
		return errors.New("usage: securevar get [flags] <name>")
	}
	name := e.args[0]

	s, err := store.Open(e.cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	data, entry, err := s.Get(name)
	if err != nil {
		return err
	}

	// The envelope does not record its algorithm or codec; the index does.
	cfg := *e.cfg
	if entry.Algorithm != "" {
		cfg.Algorithm = entry.Algorithm
	}
	if entry.Codec != "" {
		cfg.Codec = entry.Codec
	}

	v := securevar.Import[any](data, cfg.Variable())

	var password string
	if v.IsEncrypted() {
		password, err = e.resolver().Resolve("Enter password: ")
		if err != nil {
			return err
		}
	}

	value, err := v.Get(ctx, password, nil)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("name", name).Msg("read failed")
		return err
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(out))
	return nil
}

func runLs(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	ctx, e, err := setup(ctx, "ls", args, stderr)
	if err != nil {
		return err
	}

	s, err := store.Open(e.cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.List()
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug().Int("count", len(entries)).Msg("variables listed")
	if len(entries) == 0 {
		fmt.Fprintln(stdout, "No variables stored")
		return nil
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("NAME", "SIZE", "ENCRYPTED", "ALGORITHM", "CODEC", "MODIFIED")
	for _, entry := range entries {
		t.Row(
			entry.Name,
			strconv.Itoa(entry.Size),
			strconv.FormatBool(entry.Encrypted),
			entry.Algorithm,
			entry.Codec,
			entry.Modified.Format(time.DateTime),
		)
	}
	_, err = fmt.Fprintln(stdout, t.Render())
	return err
}

func runRm(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	ctx, e, err := setup(ctx, "rm", args, stderr)
	if err != nil {
		return err
	}
	if len(e.args) == 0 {
		return errors.New("usage: securevar rm [flags] <name>...")
	}

	s, err := store.Open(e.cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, name := range e.args {
		if err := s.Delete(name); err != nil {
			return err
		}
		logger.FromContext(ctx).Info().Str("name", name).Msg("variable removed")
		fmt.Fprintf(stdout, "Removed %s\n", name)
	}
	return nil
}

func runKeyring(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	ctx, e, err := setup(ctx, "keyring", args, stderr)
	if err != nil {
		return err
	}
	if len(e.args) != 1 {
		return errors.New("usage: securevar keyring [flags] save|delete|status")
	}

	r := e.resolver()
	switch e.args[0] {
	case "save":
		password, err := prompt.Resolver{Password: e.cfg.Password, Read: r.Read}.Confirm()
		if err != nil {
			return err
		}
		if err := prompt.SavePassword(r.Account, password); err != nil {
			return fmt.Errorf("failed to save to keyring: %w", err)
		}
		logger.FromContext(ctx).Info().Str("account", r.Account).Msg("password saved to keyring")
		fmt.Fprintln(stdout, "Password saved to keyring")
	case "delete":
		if err := prompt.DeletePassword(r.Account); err != nil {
			logger.FromContext(ctx).Debug().Err(err).Msg("keyring delete failed")
			fmt.Fprintln(stdout, "No password stored in keyring")
			return nil
		}
		fmt.Fprintln(stdout, "Password removed from keyring")
	case "status":
		if prompt.HasPassword(r.Account) {
			fmt.Fprintln(stdout, "Password stored in keyring")
		} else {
			fmt.Fprintln(stdout, "No password stored in keyring")
		}
	default:
		return fmt.Errorf("unknown keyring command: %s", e.args[0])
	}
	return nil
}
