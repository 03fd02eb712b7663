package main

import (
	"adikart/internal/config"
	"context"
	"fmt"
	"os"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const passwordResetSubject = "Reset your Adikart password"

const passwordResetHtmlPart = `<p>Hi {{name}},</p>
<p>We received a request to reset your Adikart password.</p>
<p><a href="{{passwordResetUrl}}">Reset password</a></p>
<p>The link is valid for 15 minutes. If you did not request a reset,
you can safely ignore this email.</p>`

const passwordResetTextPart = `Hi {{name}},

We received a request to reset your Adikart password:
{{passwordResetUrl}}

The link is valid for 15 minutes. If you did not request a reset,
you can safely ignore this email.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: ses-templates create|delete")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AwsAccessKey,
				cfg.AwsSecretKey,
				"",
			),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	svc := ses.NewFromConfig(awsCfg)
	templateName := cfg.AwsEmailPasswordResetTemplate

	switch os.Args[1] {
	case "create":
		subject := passwordResetSubject
		htmlPart := passwordResetHtmlPart
		textPart := passwordResetTextPart
		_, err = svc.CreateTemplate(context.Background(), &ses.CreateTemplateInput{
			Template: &types.Template{
				TemplateName: &templateName,
				SubjectPart:  &subject,
				HtmlPart:     &htmlPart,
				TextPart:     &textPart,
			},
		})
	case "delete":
		_, err = svc.DeleteTemplate(context.Background(), &ses.DeleteTemplateInput{
			TemplateName: &templateName,
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %v\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Success.")
}
