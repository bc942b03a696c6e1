package email

import (
	"context"
	"encoding/json"

	c "storefront/internal/core/domain/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Notifier struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                string
	welcomeTemplate       string
	passwordResetTemplate string
}

func NewNotifier(
	awsConfig aws.Config,
	sender string,
	welcomeTemplate string,
	passwordResetTemplate string,
) *Notifier {
	return &Notifier{
		ses:                   ses.NewFromConfig(awsConfig),
		sender:                sender,
		welcomeTemplate:       welcomeTemplate,
		passwordResetTemplate: passwordResetTemplate,
	}
}

func (n *Notifier) SendWelcome(ctx context.Context, email c.Email, name string) error {
	return n.sendTemplated(ctx, email, n.welcomeTemplate, welcomeTemplateParams{Name: name})
}

func (n *Notifier) SendPasswordReset(ctx context.Context, email c.Email, resetLink string) error {
	return n.sendTemplated(
		ctx,
		email,
		n.passwordResetTemplate,
		passwordResetTemplateParams{PasswordResetUrl: resetLink},
	)
}

func (n *Notifier) sendTemplated(ctx context.Context, email c.Email, template string, params interface{}) error {
	templateParamsBytes, err := json.Marshal(params)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	destination := string(email)
	_, err = n.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &n.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{destination},
			},
			Template:     &template,
			TemplateData: &templateParams,
		},
	)
	return err
}

type welcomeTemplateParams struct {
	Name string `json:"name"`
}

type passwordResetTemplateParams struct {
	PasswordResetUrl string `json:"passwordResetUrl"`
}
