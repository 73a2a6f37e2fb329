package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucrnz/qakit/pkg/dbops"
)

var (
	dbProfile  string
	dbDriver   string
	dbDSN      string
	dbUser     string
	dbPassword string
	dbOutput   string
)

// resolveConn starts from --profile and lets explicit flags override it.
func resolveConn() (dbops.Conn, error) {
	var c dbops.Conn
	if dbProfile != "" {
		p, err := cfg.Profile(dbProfile)
		if err != nil {
			return c, err
		}
		c = p
	}
	if dbDriver != "" {
		c.Driver = dbDriver
	}
	if dbDSN != "" {
		c.DSN = dbDSN
	}
	if dbUser != "" {
		c.User = dbUser
	}
	if dbPassword != "" {
		c.Password = dbPassword
	}
	if c.DSN == "" {
		return c, fmt.Errorf("no database given: use --profile or --dsn")
	}
	return c, nil
}

// sqlArgs turns positional parameters into query arguments.
func sqlArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Run one-off SQL against postgres or sqlite",
		Long: `Run one-off SQL against postgres or sqlite.

Each command opens a connection, runs one statement and closes it. The
database comes from a config profile (--profile) or from --driver/--dsn.
Positional arguments after the SQL are bound as parameters ($1 on postgres,
? on sqlite).`,
		Example: `  qakit db query --profile staging "SELECT * FROM users WHERE id = $1" 42
  qakit db count --driver sqlite --dsn ./app.db users
  qakit db exists --profile local orders || echo missing`,
	}
	cmd.PersistentFlags().StringVarP(&dbProfile, "profile", "p", "", "Database profile from the config file")
	cmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "Driver: postgres or sqlite (inferred from a postgres DSN)")
	cmd.PersistentFlags().StringVar(&dbDSN, "dsn", "", "Connection string, URL or sqlite file path")
	cmd.PersistentFlags().StringVar(&dbUser, "user", "", "User, overrides the DSN (postgres)")
	cmd.PersistentFlags().StringVar(&dbPassword, "password", "", "Password, overrides the DSN (postgres)")

	query := &cobra.Command{
		Use:   "query <sql> [params...]",
		Short: "Print every row of a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConn()
			if err != nil {
				return err
			}
			rows, err := dbops.Query(cmd.Context(), c, args[0], sqlArgs(args[1:])...)
			if err != nil {
				return err
			}
			return writeStructured(cmd.OutOrStdout(), dbOutput, rows)
		},
	}
	query.Flags().StringVarP(&dbOutput, "output", "o", "json", "Output format: json or yaml")

	exec := &cobra.Command{
		Use:   "exec <sql> [params...]",
		Short: "Run a statement and print the affected-row count",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConn()
			if err != nil {
				return err
			}
			n, err := dbops.Exec(cmd.Context(), c, args[0], sqlArgs(args[1:])...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	scalar := &cobra.Command{
		Use:   "scalar <sql> [params...]",
		Short: "Print the first column of the first row",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConn()
			if err != nil {
				return err
			}
			v, err := dbops.Scalar(cmd.Context(), c, args[0], sqlArgs(args[1:])...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	tables := &cobra.Command{
		Use:   "tables",
		Short: "List user tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConn()
			if err != nil {
				return err
			}
			names, err := dbops.TableNames(cmd.Context(), c)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	exists := &cobra.Command{
		Use:   "exists <table>",
		Short: "Check that a table exists (exit 1 if not)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConn()
			if err != nil {
				return err
			}
			ok, err := dbops.TableExists(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			return check(cmd.OutOrStdout(), ok)
		},
	}

	count := &cobra.Command{
		Use:   "count <table|select>",
		Short: "Count the rows of a table or of a SELECT query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConn()
			if err != nil {
				return err
			}
			n, err := dbops.RowCount(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.AddCommand(query, exec, scalar, tables, exists, count)
	return cmd
}
