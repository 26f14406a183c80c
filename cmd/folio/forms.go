package main

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/sivadev/folio/internal/forms"
	"github.com/sivadev/folio/internal/tui"
)

var (
	commentName    string
	commentEmail   string
	commentContent string
	commentToken   string

	contactName    string
	contactEmail   string
	contactMessage string
	contactToken   string
)

var commentCmd = &cobra.Command{
	Use:   "comment SLUG",
	Short: "Leave a comment on a project",
	Long: `Leave a comment on a project. Without flags an interactive form opens;
with --name, --email and --content the comment is submitted directly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]

		if commentName == "" && commentEmail == "" && commentContent == "" {
			return tui.RunCommentForm(projectSvc, slug, cfg.CaptchaSiteKey)
		}

		submitter := tui.NewCommentSubmitter(projectSvc, slug, cfg.CaptchaSiteKey, nil)
		values := map[string]string{
			"name":    commentName,
			"email":   commentEmail,
			"content": commentContent,
		}
		return submitOnce(submitter, values, commentToken)
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact message",
	Long: `Send a contact message. Without flags an interactive form opens; with
--name, --email and --message the message is submitted directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if contactName == "" && contactEmail == "" && contactMessage == "" {
			return tui.RunContactForm(contactSvc, cfg.CaptchaSiteKey)
		}

		submitter := tui.NewContactSubmitter(contactSvc, cfg.CaptchaSiteKey)
		values := map[string]string{
			"name":    contactName,
			"email":   contactEmail,
			"message": contactMessage,
		}
		return submitOnce(submitter, values, contactToken)
	},
}

// submitOnce drives a single non-interactive submission through the same
// pipeline the interactive forms use.
func submitOnce(submitter *forms.Submitter, values map[string]string, token string) error {
	if token != "" {
		submitter.Gate().Verify(token)
	}

	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
	s.Suffix = " Sending..."
	s.Start()
	err := submitter.Submit(context.Background(), values)
	s.Stop()

	if err != nil {
		if notice := submitter.Notice(); notice != "" {
			return fmt.Errorf("%s", notice)
		}
		return err
	}
	fmt.Println(submitter.Notice())
	return nil
}

func init() {
	commentCmd.Flags().StringVar(&commentName, "name", "", "Your name")
	commentCmd.Flags().StringVar(&commentEmail, "email", "", "Your email address")
	commentCmd.Flags().StringVar(&commentContent, "content", "", "Comment text")
	commentCmd.Flags().StringVar(&commentToken, "captcha-token", "", "CAPTCHA token from the challenge widget")

	contactCmd.Flags().StringVar(&contactName, "name", "", "Your name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Your email address")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "Message text")
	contactCmd.Flags().StringVar(&contactToken, "captcha-token", "", "CAPTCHA token from the challenge widget")
}
