package utils

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
	sesErr    error
)

func sesFromEnv() (*ses.Client, error) {
	sesOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			sesErr = fmt.Errorf("aws config load failed: %w", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient, sesErr
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	client, err := sesFromEnv()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		Logger.Warn("ses_send_failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendResetEmail delivers the password reset code.
func SendResetEmail(to string, code string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password. The code expires in 15 minutes.", code)
	return sendEmail(to, subject, body)
}

// SendWelcomeEmail greets a freshly registered user. Best-effort only.
func SendWelcomeEmail(to string, fullName string) error {
	subject := "Welcome to your health coaching journey"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Log your height and weight to get your first plan, and check off your four daily habits every day.\n\nConsistency beats intensity.", fullName)
	return sendEmail(to, subject, body)
}
