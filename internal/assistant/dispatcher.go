package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/smilecare/whatsapp-assistant/internal/appointments"
	"github.com/smilecare/whatsapp-assistant/pkg/logging"
)

const dateLayout = "2006-01-02"

// AppointmentStore is the persistence collaborator the dispatcher writes to.
type AppointmentStore interface {
	Create(ctx context.Context, name string, date time.Time) (*appointments.Appointment, error)
	List(ctx context.Context) ([]appointments.Appointment, error)
}

// Dispatcher interprets an Intent, performs the associated side effect, and
// produces the reply text. Every branch is terminal: collaborator failures
// become fallback replies, never errors.
type Dispatcher struct {
	store  AppointmentStore
	logger *logging.Logger
	now    func() time.Time
}

// NewDispatcher creates a dispatcher backed by the given store.
func NewDispatcher(store AppointmentStore, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{store: store, logger: logger, now: time.Now}
}

// Dispatch handles one intent and returns the reply to send.
func (d *Dispatcher) Dispatch(ctx context.Context, intent Intent) string {
	switch it := intent.(type) {
	case BookAppointment:
		return d.book(ctx, it)
	case ListAppointments:
		return d.list(ctx)
	case Chat:
		return replyOrClarify(it.Reply)
	case Unknown:
		return replyOrClarify(it.Reply)
	default:
		return replyClarify
	}
}

func (d *Dispatcher) book(ctx context.Context, it BookAppointment) string {
	name := strings.TrimSpace(it.Name)
	dateStr := strings.TrimSpace(it.Date)
	if name == "" || dateStr == "" {
		return replyMissingFields
	}

	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return replyBadDate
	}
	if date.Before(d.today()) {
		return replyPastDate
	}

	if _, err := d.store.Create(ctx, name, date); err != nil {
		d.logger.Error("appointment insert failed", "error", err, "name", name, "date", dateStr)
		return replyStoreError
	}
	return fmt.Sprintf(replyBookedFmt, name, dateStr)
}

func (d *Dispatcher) list(ctx context.Context) string {
	appts, err := d.store.List(ctx)
	if err != nil {
		d.logger.Error("appointment listing failed", "error", err)
		return replyListError
	}
	if len(appts) == 0 {
		return replyNoAppointments
	}

	var b strings.Builder
	b.WriteString(replyListHeader)
	for _, a := range appts {
		b.WriteString("\n- ")
		b.WriteString(a.Name)
		b.WriteString(" يوم ")
		b.WriteString(a.Date.Format(dateLayout))
	}
	return b.String()
}

// today is the current calendar date at dispatch time. Dates equal to today
// are accepted; only strictly-past dates are rejected.
func (d *Dispatcher) today() time.Time {
	now := d.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func replyOrClarify(reply string) string {
	if strings.TrimSpace(reply) == "" {
		return replyClarify
	}
	return reply
}
