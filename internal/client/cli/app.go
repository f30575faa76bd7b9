// Package cli implements keysafectl, a command-line client for the Keysafe
// gRPC API.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/keysafe-protocol/keysafe/internal/client"
	"github.com/keysafe-protocol/keysafe/internal/keysafepb"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var flagServerAddr = &cli.StringFlag{
	Name:    "addr",
	Aliases: []string{"a"},
	Value:   "127.0.0.1:50051",
	Usage:   "address and port of the Keysafe gRPC endpoint",
	EnvVars: []string{"KEYSAFE_ADDR"},
}

var flagToken = &cli.StringFlag{
	Name:    "token",
	Aliases: []string{"t"},
	Usage:   "access token sent with calls that act on behalf of the caller",
	EnvVars: []string{"KEYSAFE_TOKEN"},
}

var flagTimeout = &cli.DurationFlag{
	Name:  "timeout",
	Value: 5 * time.Second,
	Usage: "per-call deadline",
}

// Connector opens an API client for the given endpoint and token.
type Connector func(addr, token string) (keysafepb.KeysafeClient, io.Closer, error)

// SecretReader returns the token signing secret.
type SecretReader func() ([]byte, error)

func dialGRPC(addr, token string) (keysafepb.KeysafeClient, io.Closer, error) {
	c, err := client.NewGRPCClient(addr, token)
	if err != nil {
		return nil, nil, err
	}
	return c, c, nil
}

func promptSecret() ([]byte, error) {
	if s := os.Getenv("KEYSAFE_SECRET_KEY"); s != "" {
		return []byte(s), nil
	}
	fmt.Fprintln(os.Stderr, "-Enter signing secret")
	return term.ReadPassword(int(os.Stdin.Fd()))
}

type App struct {
	connect Connector
	secret  SecretReader
	out     io.Writer
}

func NewApp(out io.Writer) *App {
	return &App{connect: dialGRPC, secret: promptSecret, out: out}
}

// CLI builds the command tree.
func (a *App) CLI() *cli.App {
	return &cli.App{
		Name:      "keysafectl",
		Usage:     "talk to a Keysafe recovery coordinator",
		Writer:    a.out,
		Flags:     []cli.Flag{flagServerAddr, flagToken, flagTimeout},
		Commands:  a.commands(),
		Reader:    os.Stdin,
		ErrWriter: os.Stderr,
	}
}

func (a *App) Run(args []string) error {
	return a.CLI().Run(args)
}

var jsonOut = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true, EmitUnpopulated: true}

func (a *App) printJSON(m proto.Message) error {
	b, err := jsonOut.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

// withClient dials, runs fn under the configured deadline and closes the
// connection.
func (a *App) withClient(cCtx *cli.Context, fn func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error)) error {
	c, closer, err := a.connect(cCtx.String(flagServerAddr.Name), cCtx.String(flagToken.Name))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer closer.Close()

	resp, err := fn(cCtx, c)
	if err != nil {
		return err
	}
	return a.printJSON(resp)
}
