package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
)

func initSES() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func SendEmail(to string, subject string, body string) error {
	sesOnce.Do(initSES)

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

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func SendMFAEmail(to string, code string) error {
	subject := "Your console sign-in code"
	body := fmt.Sprintf("Your verification code is: %s\n\nUse this to complete your sign-in.", code)
	return SendEmail(to, subject, body)
}

func SendResetEmail(to string, token string) error {
	subject := "Password reset code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the console to set a new password.", token)
	return SendEmail(to, subject, body)
}
