package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"lead-capture/internal/domain/lead"
	"lead-capture/internal/pkg/clock"
	"lead-capture/internal/pkg/phone"
	"lead-capture/internal/usecase/commands"
	"lead-capture/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func newRequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List or submit contact requests",
	}
	cmd.AddCommand(newRequestsListCmd(), newRequestsSubmitCmd())
	return cmd
}

func newRequestsListCmd() *cobra.Command {
	var today bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print stored requests, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			var views []*queries.LeadView
			if today {
				views, err = a.queries.FetchToday(cmd.Context())
			} else {
				views, err = a.queries.FetchAll(cmd.Context())
			}
			if err != nil {
				return err
			}
			return renderLeads(cmd.OutOrStdout(), views)
		},
	}
	cmd.Flags().BoolVar(&today, "today", false, "only requests stored with today's date")
	return cmd
}

func newRequestsSubmitCmd() *cobra.Command {
	var req commands.SubmitLeadRequest

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a request as if it came from the contact form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			// same shaping the form applies while typing
			req.PhoneNumber = phone.ShapeInput(req.PhoneNumber)

			rec, err := a.commands.Submit(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s at %s %s\n",
				rec.RequestID, rec.RequestDate.Format(clock.DateLayout), rec.RequestTimeOfDay)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ClientName, "name", "", "client name")
	cmd.Flags().StringVar(&req.Email, "email", "", "client email (optional)")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "10 digit phone number")
	cmd.Flags().StringVar(&req.Description, "message", "", "project description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func renderLeads(w io.Writer, views []*queries.LeadView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTIME\tNAME\tPHONE\tSTATUS\tCATEGORY")
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			v.RequestDate.UTC().Format(clock.DateLayout),
			v.RequestTimeOfDay,
			v.ClientName,
			v.PhoneNumber,
			v.Status,
			lead.Classify(v.Status),
		)
	}
	fmt.Fprintf(tw, "\n%d request(s)\n", len(views))
	return tw.Flush()
}
