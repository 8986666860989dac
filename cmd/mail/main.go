package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/gestione-turni/backend/internal/config"
	"github.com/gestione-turni/backend/internal/domain"
)

// decodeResetPasswordData rilegge MailMessage.Data come dati tipizzati della
// mail di reset. Dopo l'unmarshal del messaggio Data è una map generica con le
// chiavi json minuscole: passarla direttamente al template lascerebbe
// {{ .OTP }} e {{ .Expiration }} vuoti senza alcun errore.
func decodeResetPasswordData(data any) (*domain.ResetPasswordMailData, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	out := &domain.ResetPasswordMailData{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}

	return out, nil
}

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configurazione
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("impossibile caricare la configurazione", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * client SMTP
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("impossibile creare il client SMTP", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// verifichiamo subito che il server SMTP sia raggiungibile
	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(dialCtx); err != nil {
		logger.Error("impossibile connettersi al server SMTP", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("impossibile connettersi a rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("impossibile aprire il canale", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"email_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("impossibile dichiarare la coda", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("impossibile consumare i messaggi", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("messaggio ricevuto", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("deserializzazione del messaggio fallita", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.Sender); err != nil {
					logger.Error("impossibile impostare il mittente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("impossibile impostare il destinatario", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case "reset_password":
					data, err := decodeResetPasswordData(mailMessage.Data)
					if err != nil {
						logger.Error("dati della mail non validi", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					tmpl, err := template.ParseFiles("./templates/reset_password_otp_email.html")
					if err != nil {
						logger.Error("impossibile caricare il template", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, data); err != nil {
						logger.Error("impossibile comporre il corpo della mail", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Gestione Turni - Reimpostazione password")
				default:
					logger.Error("tipo di mail non supportato", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("invio della mail fallito", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // rimettiamo il messaggio in coda
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("in attesa di messaggi... (CTRL+C per uscire)")
	<-sigChan

	slog.Info("arresto del mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker arrestato")
}
