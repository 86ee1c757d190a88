package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/yms/internal/ctxutil"
	"github.com/example/yms/internal/wire"
)

// commandContext returns a context carrying the operator who runs the command.
// Resolution order: --operator, config operator, $USER.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	operator, _ := cmd.Flags().GetString("operator")
	if operator == "" {
		operator = wire.Config().Operator
	}
	if operator == "" {
		operator = os.Getenv("USER")
	}
	if operator == "" {
		return ctx
	}
	return ctxutil.WithActorID(ctx, operator)
}
