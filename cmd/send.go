package cmd

import (
	"encoding/json"

	"github.com/jmehdipour/notify-gateway/internal/dispatcher"
	"github.com/jmehdipour/notify-gateway/internal/model"
	"github.com/spf13/cobra"
)

var (
	emailTo, emailSubject, emailBody string
	smsTo, smsText                   string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Dispatch a single message (email | sms)",
}

var sendEmailCmd = &cobra.Command{
	Use:   "email",
	Short: "Send one email through SES",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		senders, err := dispatcher.New(cmd.Context(), dispatcherOpts(cfg))
		if err != nil {
			return err
		}

		id, err := senders.Email.SendEmail(cmd.Context(), emailTo, emailSubject, emailBody)
		if err != nil {
			return err
		}
		return printReceipt(cmd, model.Receipt{ID: id, Channel: model.ChannelEmail})
	},
}

var sendSMSCmd = &cobra.Command{
	Use:   "sms",
	Short: "Send one SMS through SNS",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		senders, err := dispatcher.New(cmd.Context(), dispatcherOpts(cfg))
		if err != nil {
			return err
		}

		id, err := senders.SMS.SendSMS(cmd.Context(), smsTo, smsText)
		if err != nil {
			return err
		}
		return printReceipt(cmd, model.Receipt{ID: id, Channel: model.ChannelSMS})
	},
}

func init() {
	sendEmailCmd.Flags().StringVar(&emailTo, "to", "", "recipient address")
	sendEmailCmd.Flags().StringVar(&emailSubject, "subject", "", "subject line")
	sendEmailCmd.Flags().StringVar(&emailBody, "body", "", "plain-text body")
	_ = sendEmailCmd.MarkFlagRequired("to")
	_ = sendEmailCmd.MarkFlagRequired("subject")

	sendSMSCmd.Flags().StringVar(&smsTo, "to", "", "recipient phone number (E.164)")
	sendSMSCmd.Flags().StringVar(&smsText, "text", "", "message text")
	_ = sendSMSCmd.MarkFlagRequired("to")
	_ = sendSMSCmd.MarkFlagRequired("text")

	sendCmd.AddCommand(sendEmailCmd)
	sendCmd.AddCommand(sendSMSCmd)
}

func printReceipt(cmd *cobra.Command, r model.Receipt) error {
	return json.NewEncoder(cmd.OutOrStdout()).Encode(r)
}
