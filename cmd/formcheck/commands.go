package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"festa/internal/form/answer"
	"festa/internal/form/dto"
	"festa/internal/form/models"
	id "festa/pkg/domain"
)

// errRejected marks a check that ran but did not pass. The report has already been
// printed, so main only sets the exit status.
var errRejected = errors.New("rejected")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "formcheck",
		Short:         "Validate festa forms and answers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateFormCmd(), newCheckAnswerCmd(), newMatchCmd())
	return root
}

func newValidateFormCmd() *cobra.Command {
	var registration bool
	cmd := &cobra.Command{
		Use:   "validate-form FILE",
		Short: "Check that a form document satisfies every schema invariant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var items models.FormItems
			if registration {
				form, err := loadRegistrationForm(args[0])
				if err != nil {
					return report(cmd, err)
				}
				items = form.Items
			} else {
				form, err := loadForm(args[0])
				if err != nil {
					return report(cmd, err)
				}
				items = form.Items
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d items\n", items.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&registration, "registration", false, "read FILE as a registration form")
	return cmd
}

func newCheckAnswerCmd() *cobra.Command {
	var formPath, answerPath string
	cmd := &cobra.Command{
		Use:   "check-answer",
		Short: "Check an answer document against a form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := loadForm(formPath)
			if err != nil {
				return report(cmd, err)
			}
			var doc dto.Answer
			if err := decodeFile(answerPath, &doc); err != nil {
				return report(cmd, err)
			}
			ans, err := doc.ToModel()
			if err != nil {
				return report(cmd, err)
			}
			if err := answer.Check(form.Items, ans); err != nil {
				checkErr, ok := answer.AsError(err)
				if !ok {
					return report(cmd, err)
				}
				if err := dto.Encode(cmd.OutOrStdout(), dto.FormatJSON, dto.FromCheckError(checkErr)); err != nil {
					return err
				}
				return errRejected
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&formPath, "form", "", "form document (YAML or JSON)")
	cmd.Flags().StringVar(&answerPath, "answer", "", "answer document (YAML or JSON)")
	_ = cmd.MarkFlagRequired("form")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func newMatchCmd() *cobra.Command {
	var formPath, projectPath, at string
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Report whether a form targets a project and accepts answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := loadForm(formPath)
			if err != nil {
				return report(cmd, err)
			}
			var facts dto.ProjectFacts
			if err := decodeFile(projectPath, &facts); err != nil {
				return report(cmd, err)
			}
			target, err := facts.ToTarget()
			if err != nil {
				return report(cmd, err)
			}
			now := time.Now()
			if at != "" {
				if now, err = time.Parse(time.RFC3339, at); err != nil {
					return report(cmd, fmt.Errorf("--at: %w", err))
				}
			}
			targeted := form.IsTargeting(target)
			open := form.IsOpenAt(now)
			fmt.Fprintf(cmd.OutOrStdout(), "targeted: %t\nopen: %t\n", targeted, open)
			if !targeted {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&formPath, "form", "", "form document (YAML or JSON)")
	cmd.Flags().StringVar(&projectPath, "project", "", "project facts document (YAML or JSON)")
	cmd.Flags().StringVar(&at, "at", "", "evaluate the answer period at this RFC 3339 time instead of now")
	_ = cmd.MarkFlagRequired("form")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

// loadForm reads either an authored form or an exported one. Missing ids are
// generated so that standalone drafts validate.
func loadForm(path string) (*models.Form, error) {
	var doc dto.Form
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	content, err := doc.ToContent()
	if err != nil {
		return nil, err
	}
	formID, authorID := doc.ID, doc.AuthorID
	if formID.IsNil() {
		formID = id.FormID(uuid.New())
	}
	if authorID.IsNil() {
		authorID = id.UserID(uuid.New())
	}
	return models.NewForm(formID, authorID, content, time.Now())
}

func loadRegistrationForm(path string) (*models.RegistrationForm, error) {
	var doc dto.RegistrationForm
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	if doc.ID == (id.RegistrationFormID{}) {
		doc.ID = id.RegistrationFormID(uuid.New())
	}
	if doc.AuthorID.IsNil() {
		doc.AuthorID = id.UserID(uuid.New())
	}
	return doc.ToModel()
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := dto.Decode(f, dto.FormatFromPath(path), v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func report(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
	return err
}
