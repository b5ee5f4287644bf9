package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hotel_console/internal/app"
	"hotel_console/internal/domain"
)

func newHotelsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hotels",
		Aliases: []string{"hotel"},
		Short:   "Manage hotels",
	}
	cmd.AddCommand(
		newHotelsListCmd(rt),
		newHotelsGetCmd(rt),
		newHotelsCreateCmd(rt),
		newHotelsUpdateCmd(rt),
		newHotelsDeleteCmd(rt),
	)
	return cmd
}

func hotelTable(hotels []domain.Hotel) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		row(tw, "ID", "NAME", "CITY", "COUNTRY", "PHONE", "EMAIL", "STATUS", "ORDERABLE")
		for _, h := range hotels {
			row(tw, h.ID, h.Name, h.City, h.Country, h.Phone, h.Email, h.Status, yesNo(h.IsOrderable))
		}
	}
}

func newHotelsListCmd(rt *runtime) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hotels, optionally filtered by name or city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			if _, err := c.Hotels.Load(cmd.Context()); err != nil {
				return errFailed
			}
			c.HotelList.SetSearch(search)
			hotels := c.HotelList.Visible()
			return rt.render(hotels, hotelTable(hotels))
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive match on name or city")
	return cmd
}

func newHotelsGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one hotel",
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

			h, ok := c.Hotels.GetByID(cmd.Context(), id)
			if !ok {
				return errFailed
			}
			return rt.render(h, hotelTable([]domain.Hotel{h}))
		},
	}
}

// hotelFlags binds the editable hotel fields; apply copies only the flags the
// operator actually set.
type hotelFlags struct {
	v         app.HotelFields
	orderable bool
}

func (f *hotelFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.v.Name, "name", "", "hotel name")
	fs.StringVar(&f.v.LegalName, "legal-name", "", "legal entity name")
	fs.StringVar(&f.v.Country, "country", "", "country")
	fs.StringVar(&f.v.City, "city", "", "city")
	fs.StringVar(&f.v.Address, "address", "", "street address")
	fs.StringVar(&f.v.Phone, "phone", "", "phone number without the "+app.PhoneCountryCode+" prefix")
	fs.StringVar(&f.v.Email, "email", "", "contact email")
	fs.BoolVar(&f.orderable, "orderable", false, "hotel accepts orders")
}

func (f *hotelFlags) apply(fs *pflag.FlagSet, dst *app.HotelFields) {
	set := func(name string, to *string, from string) {
		if fs.Changed(name) {
			*to = from
		}
	}
	set("name", &dst.Name, f.v.Name)
	set("legal-name", &dst.LegalName, f.v.LegalName)
	set("country", &dst.Country, f.v.Country)
	set("city", &dst.City, f.v.City)
	set("address", &dst.Address, f.v.Address)
	set("phone", &dst.Phone, f.v.Phone)
	set("email", &dst.Email, f.v.Email)
	if fs.Changed("orderable") {
		o := f.orderable
		dst.IsOrderable = &o
	}
}

func newHotelsCreateCmd(rt *runtime) *cobra.Command {
	var flags hotelFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hotel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := rt.protected(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			form := c.HotelForm(app.ModeCreate, 0, nil)
			form.Open(cmd.Context())
			form.Edit(func(v *app.HotelFields) { flags.apply(cmd.Flags(), v) })
			return submitted(form.Submit(cmd.Context()))
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func newHotelsUpdateCmd(rt *runtime) *cobra.Command {
	var flags hotelFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a hotel; only the given flags are modified",
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

			form := c.HotelForm(app.ModeEdit, id, nil)
			if !form.Open(cmd.Context()) {
				return errFailed
			}
			form.Edit(func(v *app.HotelFields) { flags.apply(cmd.Flags(), v) })
			return submitted(form.Submit(cmd.Context()))
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func newHotelsDeleteCmd(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a hotel after confirmation",
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

			prompt := c.ConfirmHotelDelete(id)
			return rt.runConfirmation(cmd, prompt, yes, fmt.Sprintf("Hotel #%d", id))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm without prompting")
	return cmd
}

// runConfirmation resolves a delete prompt from --yes or the terminal.
func (rt *runtime) runConfirmation(cmd *cobra.Command, p *app.DeleteConfirmation, yes bool, subject string) error {
	if !yes && !confirmDelete(rt.env.In, rt.env.Err, p, subject) {
		p.Dismiss()
		fmt.Fprintln(rt.env.Out, "Cancelled")
		return nil
	}
	if !p.Confirm(cmd.Context()) {
		return errFailed
	}
	return nil
}

// submitted maps a form result to the command outcome. Store failures have
// already been notified.
func submitted(res app.SubmitResult) error {
	if res.OK {
		return nil
	}
	if len(res.Errors) > 0 {
		return fmt.Errorf("invalid input: %w", res.Errors)
	}
	return errFailed
}
