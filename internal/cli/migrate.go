package cli

import (
	"fmt"
	"os"

	"sauna-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

type migrateOptions struct {
	dir      string
	url      string
	atlasBin string
	dryRun   bool
}

func newMigrateCommand() *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations",
		Long: `Apply the SQL files in the migrations directory with atlas.
The target database defaults to the DB_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, opts)
		},
	}
	addMigrateFlags(cmd, opts)

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current revision and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrateStatus(cmd, opts)
		},
	}
	addMigrateFlags(status, opts)
	cmd.AddCommand(status)

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the statements without executing them")
	return cmd
}

func addMigrateFlags(cmd *cobra.Command, opts *migrateOptions) {
	cmd.Flags().StringVar(&opts.dir, "dir", "migrations", "directory holding the migration files and atlas.sum")
	cmd.Flags().StringVar(&opts.url, "url", "", "database URL (default built from DB_* variables)")
	cmd.Flags().StringVar(&opts.atlasBin, "atlas", "atlas", "path to the atlas binary")
}

func (o *migrateOptions) databaseURL() (string, error) {
	if o.url != "" {
		return o.url, nil
	}
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return "", err
	}
	return dbCfg.MigrationURL(), nil
}

func (o *migrateOptions) client() (*atlasexec.Client, func(), error) {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(o.dir)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare migration directory %s: %w", o.dir, err)
	}
	client, err := atlasexec.NewClient(workdir.Path(), o.atlasBin)
	if err != nil {
		_ = workdir.Close()
		return nil, nil, fmt.Errorf("failed to create atlas client: %w", err)
	}
	return client, func() { _ = workdir.Close() }, nil
}

func runMigrate(cmd *cobra.Command, opts *migrateOptions) error {
	url, err := opts.databaseURL()
	if err != nil {
		return err
	}
	client, closeFn, err := opts.client()
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
		URL:    url,
		DryRun: opts.dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(res.Applied) == 0 {
		fmt.Fprintf(out, "Schema is up to date (revision %s)\n", res.Current)
		return nil
	}
	for _, f := range res.Applied {
		fmt.Fprintf(out, "  applied %s\n", f.Name)
	}
	fmt.Fprintf(out, "Migrated from %q to %s (%d files)\n", res.Current, res.Target, len(res.Applied))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, opts *migrateOptions) error {
	url, err := opts.databaseURL()
	if err != nil {
		return err
	}
	client, closeFn, err := opts.client()
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := client.MigrateStatus(cmd.Context(), &atlasexec.MigrateStatusParams{URL: url})
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current: %s\n", res.Current)
	fmt.Fprintf(out, "Next:    %s\n", res.Next)
	fmt.Fprintf(out, "Pending: %d\n", len(res.Pending))
	return nil
}
