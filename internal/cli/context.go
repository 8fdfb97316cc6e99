package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/sitedesk/internal/ctxutil"
)

// actorContext builds the request context from the --actor/--role flags.
// Identity is asserted per invocation and never stored in config, so one
// terminal can act as different operators without state leaking between
// commands.
func actorContext(cmd *cobra.Command) context.Context {
	actor, _ := cmd.Flags().GetString("actor")
	role, _ := cmd.Flags().GetString("role")
	return ctxutil.WithActor(context.Background(), ctxutil.Actor{ID: actor, Role: role})
}

// addActorFlags registers the identity flags on a command group.
func addActorFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("actor", "", "Acting operator ID (e.g. user-7)")
	cmd.PersistentFlags().String("role", "user", "Acting role: user or admin")
}
