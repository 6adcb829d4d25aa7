package notifications

import (
	"log/slog"
	"sync"
)

// message is one queued email.
type message struct {
	to      string
	subject string
	body    string
}

// Dispatcher implements domain.NotificationService as a bounded
// background queue over a Mailer. Enqueue never blocks: when the queue
// is full the message is dropped and logged. Send failures are logged
// and never retried; a dropped email never rolls back an account
// mutation that already committed.
type Dispatcher struct {
	mailer Mailer
	logger *slog.Logger
	queue  chan message

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher creates a dispatcher with the given queue capacity and
// starts the worker pool.
func NewDispatcher(mailer Mailer, logger *slog.Logger, capacity, workers int) *Dispatcher {
	if capacity < 1 {
		capacity = 1
	}
	if workers < 1 {
		workers = 1
	}

	d := &Dispatcher{
		mailer: mailer,
		logger: logger,
		queue:  make(chan message, capacity),
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		if err := d.mailer.Send(msg.to, msg.subject, msg.body); err != nil {
			d.logger.Error("email send failed",
				slog.String("to", msg.to),
				slog.String("subject", msg.subject),
				slog.Any("error", err))
		}
	}
}

// enqueue hands a message to the worker pool without blocking.
func (d *Dispatcher) enqueue(to, subject, body string) {
	select {
	case d.queue <- message{to: to, subject: subject, body: body}:
	default:
		d.logger.Warn("mail queue full, dropping message",
			slog.String("to", to),
			slog.String("subject", subject))
	}
}

// Close stops accepting messages and waits for in-flight sends.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// SendWelcome implements domain.NotificationService
func (d *Dispatcher) SendWelcome(to, name string) {
	d.enqueue(to, "Welcome to Our Platform", welcomeBody(name))
}

// SendVerification implements domain.NotificationService
func (d *Dispatcher) SendVerification(to, name, verificationURL string) {
	d.enqueue(to, "Verify Your Email", verificationBody(name, verificationURL))
}

// SendOTP implements domain.NotificationService
func (d *Dispatcher) SendOTP(to, name, code string) {
	d.enqueue(to, "Your OTP Code", otpBody(name, code))
}

// SendEmailChangeVerification implements domain.NotificationService
func (d *Dispatcher) SendEmailChangeVerification(to, name, verificationURL string) {
	d.enqueue(to, "Verify Your New Email", emailChangeBody(name, verificationURL))
}
