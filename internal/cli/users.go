package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hotel_console/internal/app"
	"hotel_console/internal/domain"
)

func newUsersCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage hotel-admin accounts",
	}
	cmd.AddCommand(
		newUsersListCmd(rt),
		newUsersGetCmd(rt),
		newUsersCreateCmd(rt),
		newUsersUpdateCmd(rt),
		newUsersDeleteCmd(rt),
	)
	return cmd
}

func userTable(users []domain.User) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		row(tw, "ID", "USERNAME", "NAME", "EMAIL", "HOTEL", "STATUS")
		for _, u := range users {
			row(tw, u.ID, u.Username, u.Name, u.Email, u.HotelName, u.AccountStatus)
		}
	}
}

func newUsersListCmd(rt *runtime) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users, optionally filtered by username, name or hotel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			if _, err := c.Users.Load(cmd.Context()); err != nil {
				return errFailed
			}
			c.UserList.SetSearch(search)
			users := c.UserList.Visible()
			return rt.render(users, userTable(users))
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive match on username, name or hotel name")
	return cmd
}

func newUsersGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			u, ok := c.Users.GetByID(cmd.Context(), id)
			if !ok {
				return errFailed
			}
			return rt.render(u, userTable([]domain.User{u}))
		},
	}
}

type userFlags struct{ v app.UserFields }

func (f *userFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.v.Username, "username", "", "login name")
	fs.StringVar(&f.v.Email, "email", "", "email address")
	fs.StringVar(&f.v.Password, "password", "", "new password (8+ characters)")
	fs.StringVar(&f.v.Name, "name", "", "full name")
	fs.Int64Var(&f.v.HotelID, "hotel-id", 0, "hotel the account administers")
	fs.StringVar(&f.v.AccountStatus, "status", "", "account status (ACTIVE or INACTIVE)")
}

func (f *userFlags) apply(fs *pflag.FlagSet, dst *app.UserFields) {
	set := func(name string, to *string, from string) {
		if fs.Changed(name) {
			*to = from
		}
	}
	set("username", &dst.Username, f.v.Username)
	set("email", &dst.Email, f.v.Email)
	set("password", &dst.Password, f.v.Password)
	set("name", &dst.Name, f.v.Name)
	set("status", &dst.AccountStatus, f.v.AccountStatus)
	if fs.Changed("hotel-id") {
		dst.HotelID = f.v.HotelID
	}
}

func newUsersCreateCmd(rt *runtime) *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hotel-admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			form := c.UserForm(app.ModeCreate, 0, nil)
			form.Open(cmd.Context())
			form.Edit(func(v *app.UserFields) { flags.apply(cmd.Flags(), v) })
			return submitted(form.Submit(cmd.Context()))
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func newUsersUpdateCmd(rt *runtime) *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change an account; the password is only sent when --password is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			form := c.UserForm(app.ModeEdit, id, nil)
			if !form.Open(cmd.Context()) {
				return errFailed
			}
			form.Edit(func(v *app.UserFields) { flags.apply(cmd.Flags(), v) })
			return submitted(form.Submit(cmd.Context()))
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func newUsersDeleteCmd(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an account after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			prompt := c.ConfirmUserDelete(id)
			return rt.runConfirmation(cmd, prompt, yes, fmt.Sprintf("User #%d", id))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm without prompting")
	return cmd
}
