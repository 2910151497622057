package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/essaehaan/Profile/internal/client/guard"
	"github.com/essaehaan/Profile/internal/client/models"
	"github.com/essaehaan/Profile/internal/client/purchase"
)

// Buy runs the purchase wizard for a course. Typing "cancel" at any prompt
// closes it; "back" returns to the previous step.
func (a *App) Buy(ctx context.Context, id string) error {
	from := guard.CoursePath(id)
	if !a.authorize(ctx, from) {
		return nil
	}
	course, err := a.courses.Get(ctx, models.ID(id))
	if err != nil {
		return a.report(ctx, err, from)
	}

	w := a.newWizard(*course)
	defer w.Close()

	a.printf("Purchasing %s (%s)\n", course.Title, course.Price)
	for {
		st := w.State()
		if st.Closed {
			return nil
		}
		var done bool
		switch st.Step {
		case purchase.StepSelectPayment:
			done, err = a.buySelectMethod(w)
		case purchase.StepSubmitEvidence:
			done, err = a.buyEvidence(w, st)
		case purchase.StepConfirm:
			done, err = a.buyConfirm(ctx, w, st)
		case purchase.StepSuccess:
			a.stepHeader(purchase.StepSuccess, "Done")
			a.println("Purchase submitted! Your access will be activated once the payment is verified.")
			select {
			case <-w.Done():
			case <-ctx.Done():
			}
			return nil
		}
		if err != nil || done {
			return err
		}
	}
}

// answer reads a line and reports whether it asked to cancel the wizard.
func (a *App) answer(w *purchase.Wizard, prompt string) (string, bool, error) {
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", true, err
	}
	if strings.EqualFold(v, "cancel") {
		_ = w.Close()
		a.println("Purchase cancelled")
		return "", true, nil
	}
	return v, false, nil
}

func (a *App) buySelectMethod(w *purchase.Wizard) (bool, error) {
	a.stepHeader(purchase.StepSelectPayment, "Select payment method")
	for i, m := range purchase.PaymentMethods {
		a.printf("  %d) %s  %s\n", i+1, m.Name, m.Account)
	}
	v, stop, err := a.answer(w, "Choose a payment method (number or name, 'cancel' to abort)")
	if stop {
		return true, err
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(purchase.PaymentMethods) {
		v = purchase.PaymentMethods[n-1].ID
	}
	_ = w.SelectPaymentMethod(strings.ToLower(v))
	if err := w.Next(); err != nil {
		a.printFieldErrors(w.State().Errors)
	}
	return false, nil
}

func (a *App) buyEvidence(w *purchase.Wizard, st purchase.State) (bool, error) {
	a.stepHeader(purchase.StepSubmitEvidence, "Submit transaction details")
	a.printf("Send %s to %s account %s\n", st.Course.Price, st.Method.Name, st.Method.Account)

	txID, stop, err := a.answer(w, "Transaction ID ('back' to change method)")
	if stop {
		return true, err
	}
	if strings.EqualFold(txID, "back") {
		_ = w.Back()
		return false, nil
	}
	_ = w.SetTransactionID(txID)

	path, stop, err := a.answer(w, "Path to the transaction slip (JPG, PNG or PDF)")
	if stop {
		return true, err
	}
	if path != "" {
		file, err := LoadAttachment(path)
		if err != nil {
			a.println("Error:", err)
		} else {
			_ = w.AttachEvidence(file)
		}
	}

	if err := w.Next(); err != nil {
		a.printFieldErrors(w.State().Errors)
	}
	return false, nil
}

func (a *App) buyConfirm(ctx context.Context, w *purchase.Wizard, st purchase.State) (bool, error) {
	a.stepHeader(purchase.StepConfirm, "Confirm purchase")
	a.printf("Course: %s\nAmount: %s\nMethod: %s\nTransaction ID: %s\n",
		st.Course.Title, st.Course.Price, st.Method.Name, st.TransactionID)
	if st.Evidence != nil {
		a.println("Slip:", st.Evidence.Name)
	}

	v, stop, err := a.answer(w, "Type 'confirm' to submit or 'back' to edit")
	if stop {
		return true, err
	}
	switch strings.ToLower(v) {
	case "back":
		_ = w.Back()
	case "confirm":
		a.println("Processing...")
		if err := w.Confirm(ctx); err != nil {
			if msg := w.State().Errors[purchase.FieldSubmit]; msg != "" {
				a.println(msg)
			}
			a.logger.Warn(ctx, "purchase not confirmed", "course", st.Course.ID, "error", err)
		}
	}
	return false, nil
}

func (a *App) stepHeader(step purchase.Step, title string) {
	a.printf("Step %d of %d: %s\n", int(step), int(purchase.StepSuccess), title)
}
