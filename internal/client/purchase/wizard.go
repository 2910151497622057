// Package purchase drives the four step purchase dialog: choose a payment
// method, submit transfer evidence, confirm, and a success screen that
// closes itself.
package purchase

import (
	"context"
	"errors"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/essaehaan/Profile/internal/client/models"
	"github.com/essaehaan/Profile/internal/client/validation"
	"github.com/essaehaan/Profile/internal/logging"
)

type Step int

const (
	StepSelectPayment Step = iota + 1
	StepSubmitEvidence
	StepConfirm
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepSelectPayment:
		return "select payment"
	case StepSubmitEvidence:
		return "submit evidence"
	case StepConfirm:
		return "confirm"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Field keys of State.Errors.
const (
	FieldPaymentMethod = "paymentMethod"
	FieldTransactionID = "transactionId"
	FieldFile          = "file"
	FieldSubmit        = "submit"
)

const (
	MsgSelectMethod   = "Please select a payment method"
	MsgTransactionID  = "Please enter the transaction ID"
	MsgPurchaseFailed = "Purchase could not be completed. Please try again."
)

// DefaultAutoCloseDelay is how long the success step stays open.
const DefaultAutoCloseDelay = 3 * time.Second

var (
	ErrClosed         = errors.New("purchase session closed")
	ErrInvalidStep    = errors.New("action not available in this step")
	ErrConfirmPending = errors.New("purchase confirmation already in progress")
)

// afterFunc schedules f and returns its cancel function.
var afterFunc = func(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// State is a copy of the wizard for rendering.
type State struct {
	ID            uuid.UUID
	Course        models.Course
	Step          Step
	Method        PaymentMethod
	TransactionID string
	Evidence      *models.Attachment
	Errors        validation.Errors
	Loading       bool
	Closed        bool
}

// Wizard is one purchase session. It is safe for concurrent use.
type Wizard struct {
	mu sync.Mutex

	id       uuid.UUID
	course   models.Course
	step     Step
	method   string
	txID     string
	evidence *models.Attachment
	errs     validation.Errors
	loading  bool
	closed   bool

	processor Processor
	autoClose time.Duration
	stopTimer func() bool
	onClose   func()
	done      chan struct{}
	logger    logging.Logger
}

type Option func(*Wizard)

func WithProcessor(p Processor) Option {
	return func(w *Wizard) { w.processor = p }
}

func WithAutoCloseDelay(d time.Duration) Option {
	return func(w *Wizard) { w.autoClose = d }
}

// WithOnClose registers fn to run once when the session closes.
func WithOnClose(fn func()) Option {
	return func(w *Wizard) { w.onClose = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(w *Wizard) { w.logger = l }
}

// New opens a purchase session for course.
func New(course models.Course, opts ...Option) *Wizard {
	w := &Wizard{
		id:        uuid.New(),
		course:    course,
		step:      StepSelectPayment,
		errs:      validation.Errors{},
		processor: SimulatedProcessor{Delay: DefaultConfirmDelay},
		autoClose: DefaultAutoCloseDelay,
		done:      make(chan struct{}),
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Done is closed when the session closes.
func (w *Wizard) Done() <-chan struct{} {
	return w.done
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	method, _ := MethodByID(w.method)
	return State{
		ID:            w.id,
		Course:        w.course,
		Step:          w.step,
		Method:        method,
		TransactionID: w.txID,
		Evidence:      w.evidence,
		Errors:        maps.Clone(w.errs),
		Loading:       w.loading,
		Closed:        w.closed,
	}
}

// usable reports the error for an action that requires the given step.
// The caller holds w.mu.
func (w *Wizard) usable(step Step) error {
	if w.closed {
		return ErrClosed
	}
	if w.step != step {
		return ErrInvalidStep
	}
	return nil
}

func (w *Wizard) SelectPaymentMethod(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.usable(StepSelectPayment); err != nil {
		return err
	}
	if _, ok := MethodByID(id); !ok {
		w.errs[FieldPaymentMethod] = MsgSelectMethod
		return validation.Errors{FieldPaymentMethod: MsgSelectMethod}.Err()
	}
	w.method = id
	delete(w.errs, FieldPaymentMethod)
	return nil
}

func (w *Wizard) SetTransactionID(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.usable(StepSubmitEvidence); err != nil {
		return err
	}
	w.txID = id
	delete(w.errs, FieldTransactionID)
	return nil
}

// AttachEvidence sets the transfer slip. A rejected file leaves the
// previous one in place.
func (w *Wizard) AttachEvidence(f *models.Attachment) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.usable(StepSubmitEvidence); err != nil {
		return err
	}
	if msg := validation.ValidateEvidence(f); msg != "" {
		w.errs[FieldFile] = msg
		return validation.Errors{FieldFile: msg}.Err()
	}
	w.evidence = f
	delete(w.errs, FieldFile)
	return nil
}

// Next advances one step once the current step is complete.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	errs := validation.Errors{}
	switch w.step {
	case StepSelectPayment:
		if w.method == "" {
			errs[FieldPaymentMethod] = MsgSelectMethod
		}
	case StepSubmitEvidence:
		if w.evidence == nil {
			errs[FieldFile] = validation.MsgEvidenceMissing
		}
		if strings.TrimSpace(w.txID) == "" {
			errs[FieldTransactionID] = MsgTransactionID
		}
	default:
		return ErrInvalidStep
	}

	w.errs = errs
	if err := errs.Err(); err != nil {
		return err
	}
	w.step++
	return nil
}

// Back returns to the previous step. Entered data is kept; errors are not.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.step != StepSubmitEvidence && w.step != StepConfirm {
		return ErrInvalidStep
	}
	if w.loading {
		return ErrConfirmPending
	}
	w.step--
	w.errs = validation.Errors{}
	return nil
}

// Confirm submits the order. It blocks until the processor returns.
func (w *Wizard) Confirm(ctx context.Context) error {
	w.mu.Lock()
	if err := w.usable(StepConfirm); err != nil {
		w.mu.Unlock()
		return err
	}
	if w.loading {
		w.mu.Unlock()
		return ErrConfirmPending
	}
	w.loading = true
	delete(w.errs, FieldSubmit)
	method, _ := MethodByID(w.method)
	order := Order{
		SessionID:     w.id,
		Course:        w.course,
		Method:        method,
		TransactionID: strings.TrimSpace(w.txID),
		Evidence:      w.evidence,
	}
	processor := w.processor
	w.mu.Unlock()

	err := processor.Process(ctx, order)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false
	if w.closed {
		return ErrClosed
	}
	if err != nil {
		w.logger.Warn(ctx, "purchase confirmation failed", "session", w.id, "course", w.course.ID, "error", err)
		w.errs[FieldSubmit] = MsgPurchaseFailed
		return err
	}

	w.logger.Info(ctx, "purchase confirmed", "session", w.id, "course", w.course.ID, "method", method.ID)
	w.step = StepSuccess
	w.stopTimer = afterFunc(w.autoClose, func() { _ = w.Close() })
	return nil
}

// Close ends the session. It is safe to call more than once; the close
// callback runs only the first time.
func (w *Wizard) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.stopTimer != nil {
		w.stopTimer()
		w.stopTimer = nil
	}
	w.method = ""
	w.txID = ""
	w.evidence = nil
	w.errs = validation.Errors{}
	onClose := w.onClose
	close(w.done)
	w.mu.Unlock()

	if onClose != nil {
		onClose()
	}
	return nil
}
