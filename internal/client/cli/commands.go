package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/keysafepb"
	"github.com/keysafe-protocol/keysafe/internal/server/auth"
	"github.com/urfave/cli/v2"
	"google.golang.org/protobuf/proto"
)

func callCtx(cCtx *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cCtx.Context, cCtx.Duration(flagTimeout.Name))
}

func argAt(cCtx *cli.Context, i int, name string) (string, error) {
	v := cCtx.Args().Get(i)
	if v == "" {
		return "", fmt.Errorf("missing argument <%s>", name)
	}
	return v, nil
}

func amountArg(cCtx *cli.Context, i int) (uint64, error) {
	s, err := argAt(cCtx, i, "amount")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q: %w", s, err)
	}
	return n, nil
}

// parseCustodian reads "node" or "node:condition".
func parseCustodian(s string) (*keysafepb.Custodian, error) {
	id, cond, found := strings.Cut(s, ":")
	if id == "" {
		return nil, fmt.Errorf("empty custodian in %q", s)
	}
	c := &keysafepb.Custodian{NodeId: id}
	if found {
		n, err := strconv.ParseUint(cond, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad condition in %q: %w", s, err)
		}
		c.Condition = uint32(n)
	}
	return c, nil
}

func (a *App) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "ping",
			Usage: "check that the server answers",
			Action: func(cCtx *cli.Context) error {
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.Ping(ctx, &keysafepb.PingRequest{})
				})
			},
		},
		{
			Name:  "supply",
			Usage: "print the total issued supply",
			Action: func(cCtx *cli.Context) error {
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.TotalIssued(ctx, &keysafepb.TotalIssuedRequest{})
				})
			},
		},
		{
			Name:      "balance",
			Usage:     "print the balance of an identity",
			ArgsUsage: "<identity>",
			Action: func(cCtx *cli.Context) error {
				id, err := argAt(cCtx, 0, "identity")
				if err != nil {
					return err
				}
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.BalanceOf(ctx, &keysafepb.BalanceOfRequest{Identity: id})
				})
			},
		},
		a.transferCommand("transfer", "move funds from the caller, failing on underflow", false),
		a.transferCommand("transfer-checked", "move funds from the caller if the balance covers it", true),
		{
			Name:      "register-node",
			Usage:     "register the caller as a custodian node",
			ArgsUsage: "<public-key>",
			Action: func(cCtx *cli.Context) error {
				pk, err := argAt(cCtx, 0, "public-key")
				if err != nil {
					return err
				}
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.RegisterNode(ctx, &keysafepb.RegisterNodeRequest{PublicKey: pk})
				})
			},
		},
		{
			Name:      "node",
			Usage:     "show a registered node",
			ArgsUsage: "<identity>",
			Action: func(cCtx *cli.Context) error {
				id, err := argAt(cCtx, 0, "identity")
				if err != nil {
					return err
				}
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.GetNode(ctx, &keysafepb.GetNodeRequest{Id: id})
				})
			},
		},
		{
			Name:      "register-user",
			Usage:     "register the caller with three custodians (node[:condition])",
			ArgsUsage: "<public-key> <custodian> <custodian> <custodian>",
			Action: func(cCtx *cli.Context) error {
				pk, err := argAt(cCtx, 0, "public-key")
				if err != nil {
					return err
				}
				if cCtx.NArg() != 4 {
					return fmt.Errorf("need exactly 3 custodians, got %d", max(cCtx.NArg()-1, 0))
				}
				req := &keysafepb.RegisterUserRequest{PublicKey: pk}
				for _, s := range cCtx.Args().Slice()[1:] {
					cust, err := parseCustodian(s)
					if err != nil {
						return err
					}
					req.Custodians = append(req.Custodians, cust)
				}
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.RegisterUser(ctx, req)
				})
			},
		},
		{
			Name:      "user",
			Usage:     "show a registered user",
			ArgsUsage: "<identity>",
			Action: func(cCtx *cli.Context) error {
				id, err := argAt(cCtx, 0, "identity")
				if err != nil {
					return err
				}
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.GetUser(ctx, &keysafepb.GetUserRequest{Id: id})
				})
			},
		},
		{
			Name:  "start-recovery",
			Usage: "open a recovery round for the caller",
			Action: func(cCtx *cli.Context) error {
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.StartRecovery(ctx, &keysafepb.StartRecoveryRequest{})
				})
			},
		},
		{
			Name:      "confirm",
			Usage:     "submit the caller's confirmation for a user's recovery",
			ArgsUsage: "<user> <proof>",
			Action: func(cCtx *cli.Context) error {
				user, err := argAt(cCtx, 0, "user")
				if err != nil {
					return err
				}
				proof, err := argAt(cCtx, 1, "proof")
				if err != nil {
					return err
				}
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.SubmitConfirmation(ctx, &keysafepb.SubmitConfirmationRequest{UserId: user, Proof: proof})
				})
			},
		},
		{
			Name:      "session",
			Usage:     "show a user's recovery session",
			ArgsUsage: "<user>",
			Action: func(cCtx *cli.Context) error {
				user, err := argAt(cCtx, 0, "user")
				if err != nil {
					return err
				}
				return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
					ctx, cancel := callCtx(cCtx)
					defer cancel()
					return c.GetSession(ctx, &keysafepb.GetSessionRequest{UserId: user})
				})
			},
		},
		{
			Name:  "token",
			Usage: "access token helpers",
			Subcommands: []*cli.Command{
				{
					Name:      "mint",
					Usage:     "sign a development access token for an identity",
					ArgsUsage: "<identity>",
					Flags: []cli.Flag{
						&cli.DurationFlag{Name: "ttl", Value: common.DefaultTokenTTL, Usage: "token lifetime"},
					},
					Action: a.mintToken,
				},
			},
		},
	}
}

func (a *App) transferCommand(name, usage string, checked bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<to> <amount>",
		Action: func(cCtx *cli.Context) error {
			to, err := argAt(cCtx, 0, "to")
			if err != nil {
				return err
			}
			amount, err := amountArg(cCtx, 1)
			if err != nil {
				return err
			}
			req := &keysafepb.TransferRequest{To: to, Amount: amount}
			return a.withClient(cCtx, func(cCtx *cli.Context, c keysafepb.KeysafeClient) (proto.Message, error) {
				ctx, cancel := callCtx(cCtx)
				defer cancel()
				if checked {
					return c.TransferChecked(ctx, req)
				}
				return c.Transfer(ctx, req)
			})
		},
	}
}

func (a *App) mintToken(cCtx *cli.Context) error {
	id, err := argAt(cCtx, 0, "identity")
	if err != nil {
		return err
	}
	secret, err := a.secret()
	if err != nil {
		return fmt.Errorf("read secret: %w", err)
	}
	defer common.WipeByteArray(secret)

	tok, err := auth.GenerateToken(id, secret, cCtx.Duration("ttl"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, tok)
	return err
}
