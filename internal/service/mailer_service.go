package service

import (
	"fmt"

	"profesionesuy-api/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type MailerService interface {
	SendPasswordResetEmail(to string, firstName string, token string) error
}

type mailerService struct {
	cfg *config.Config
	log *logrus.Logger
}

func NewMailerService(cfg *config.Config, log *logrus.Logger) MailerService {
	return &mailerService{
		cfg: cfg,
		log: log,
	}
}

// SendPasswordResetEmail sends the reset link built from FRONTEND_URL.
// The token is the raw value, the usecase owns its expiry.
func (s *mailerService) SendPasswordResetEmail(to string, firstName string, token string) error {
	resetLink := fmt.Sprintf("%s/restablecer-contrasena?token=%s", s.cfg.App.FrontendURL, token)

	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Recibimos una solicitud para restablecer tu contraseña.</p>
		<p><a href="%s">Restablecer contraseña</a></p>
		<p>El enlace vence en una hora. Si no fuiste vos, ignorá este correo.</p>
		<p>Equipo ProfesionesUY</p>
	`, firstName, resetLink)

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTP.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Restablecer contraseña - ProfesionesUY")
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.SMTP.Host, s.cfg.SMTP.Port, s.cfg.SMTP.User, s.cfg.SMTP.Password)

	if err := d.DialAndSend(m); err != nil {
		s.log.Warnf("Failed to send password reset email to %s: %+v", to, err)
		return err
	}

	return nil
}
