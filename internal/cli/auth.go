package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hotel_console/internal/app"
)

func newLoginCmd(rt *runtime) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Long:  "Signs in with email and password. The password is read from stdin when --password is omitted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = readLine(rt.env.In, rt.env.Err, "Password: ")
			}
			if errs := app.ValidateLogin(email, password); len(errs) > 0 {
				return fmt.Errorf("invalid input: %w", errs)
			}

			c, done, err := rt.openConsole(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer done()

			if !c.Session.Login(cmd.Context(), email, password) {
				return errFailed
			}
			u := c.Session.User()
			fmt.Fprintf(rt.env.Out, "Logged in as %s (%s)\n", u.Username, u.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := rt.openConsole(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer done()

			c.Session.Logout(cmd.Context())
			fmt.Fprintln(rt.env.Out, "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			u := c.Session.User()
			return rt.render(u, func(tw *tabwriter.Writer) {
				row(tw, "ID", u.ID)
				row(tw, "USERNAME", u.Username)
				row(tw, "EMAIL", u.Email)
				row(tw, "NAME", u.Name)
				row(tw, "STATUS", u.AccountStatus)
				row(tw, "ROLES", strings.Join(u.Roles, ","))
			})
		},
	}
}

func newDashboardCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			st, err := c.Dashboard.Refresh(cmd.Context())
			if err != nil {
				return errFailed
			}
			return rt.render(st, func(tw *tabwriter.Writer) {
				row(tw, "TOTAL HOTELS", st.Hotels)
				row(tw, "HOTEL ADMINS", st.HotelAdmins)
				row(tw, "ACTIVE HOTELS", st.ActiveHotels)
				row(tw, "ACTIVE %", fmt.Sprintf("%.1f", st.ActivePercent))
			})
		},
	}
}
