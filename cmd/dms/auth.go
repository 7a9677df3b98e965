package main

import (
	"bufio"
	"flag"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
)

type loginOptions struct {
	Username string
	Password string
}

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	fs.StringVar(&opts.Username, "username", "", "Account username")
	fs.StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.Password == "" {
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}
		opts.Password = password
	}

	sess, err := cmdCtx.Services.Auth.Login(cmdCtx.Ctx, opts.Username, opts.Password)
	if err != nil {
		return err
	}

	return writef(os.Stdout, "signed in as %s\n", sess.Actor.Username)
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	if err := cmdCtx.Services.Auth.Logout(cmdCtx.Ctx); err != nil {
		return err
	}
	return writeln(os.Stdout, "signed out")
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var out outputOptions
	addOutputFlags(fs, &out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess := cmdCtx.Services.Auth.Current()
	if sess == nil {
		return writeln(os.Stdout, "not signed in")
	}

	return renderResult(os.Stdout, out, sess, func(tw *tabwriter.Writer) error {
		if err := writeln(tw, "ID\tUSERNAME\tEMAIL\tROLES"); err != nil {
			return err
		}
		return writef(tw, "%d\t%s\t%s\t%s\n",
			sess.Actor.ID, sess.Actor.Username, sess.Actor.Email, joinRoles(sess.Actor.Roles))
	})
}

type registerOptions struct {
	Username string
	Email    string
	Password string
}

func runRegister(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts registerOptions
	fs.StringVar(&opts.Username, "username", "", "Account username")
	fs.StringVar(&opts.Email, "email", "", "Account email")
	fs.StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.Password == "" {
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}
		opts.Password = password
	}

	user, err := cmdCtx.Services.Auth.Register(cmdCtx.Ctx, model.SignUpRequest{
		Username: opts.Username,
		Email:    opts.Email,
		Password: opts.Password,
	})
	if err != nil {
		return err
	}

	return writef(os.Stdout, "account %s created (id %d); run `dms login` to sign in\n",
		user.Username, user.ID)
}

// promptSecret reads one line from stdin. The CLI runs in scripts and CI as
// well as terminals, so it reads plainly rather than toggling echo.
func promptSecret(label string) (string, error) {
	if err := writef(os.Stderr, "%s", label); err != nil {
		return "", err
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeValidation, "read password")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func joinRoles[T ~string](roles []T) string {
	parts := make([]string, 0, len(roles))
	for _, role := range roles {
		parts = append(parts, string(role))
	}
	return strings.Join(parts, ",")
}
