package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"hotel-checkin/models"
)

// ErrStepNotAllowed is returned for an action the current step does not
// accept.
var ErrStepNotAllowed = errors.New("action not allowed in current step")

type ActionType string

const (
	ActStart             ActionType = "start"
	ActSkipIDCapture     ActionType = "skip-id"
	ActNext              ActionType = "next"
	ActBack              ActionType = "back"
	ActUpdateFields      ActionType = "update-fields"
	ActOpenHistory       ActionType = "open-history"
	ActCloseHistory      ActionType = "close-history"
	ActEditRecord        ActionType = "edit-record"
	ActSwitchCamera      ActionType = "switch-camera"
	ActCaptureFailed     ActionType = "capture-failed"
	ActCaptureCompleted  ActionType = "capture-completed"
	ActCompleteSignature ActionType = "complete-signature"
	ActReset             ActionType = "reset"
)

// Action is one input to the wizard reducer. Only the fields relevant to
// Type are read.
type Action struct {
	Type ActionType

	Patch models.GuestPatch
	Email *EmailParts
	Phone *PhoneParts

	RecordID string

	CaptureErr error
	Capture    CaptureResult
	Generation uint64

	Strokes        []Stroke
	SignatureImage string
}

func Start() Action         { return Action{Type: ActStart} }
func SkipIDCapture() Action { return Action{Type: ActSkipIDCapture} }
func Next() Action          { return Action{Type: ActNext} }
func Back() Action          { return Action{Type: ActBack} }
func OpenHistory() Action   { return Action{Type: ActOpenHistory} }
func CloseHistory() Action  { return Action{Type: ActCloseHistory} }
func SwitchCamera() Action  { return Action{Type: ActSwitchCamera} }
func Reset() Action         { return Action{Type: ActReset} }

func UpdateFields(patch models.GuestPatch, email *EmailParts, phone *PhoneParts) Action {
	return Action{Type: ActUpdateFields, Patch: patch, Email: email, Phone: phone}
}

func EditRecord(id string) Action {
	return Action{Type: ActEditRecord, RecordID: id}
}

// CaptureFailed and CaptureCompleted carry the capture generation they were
// started under; results from an older generation are dropped.
func CaptureFailed(err error, generation uint64) Action {
	return Action{Type: ActCaptureFailed, CaptureErr: err, Generation: generation}
}

func CaptureCompleted(res CaptureResult, generation uint64) Action {
	return Action{Type: ActCaptureCompleted, Capture: res, Generation: generation}
}

func CompleteSignature(strokes []Stroke, image string) Action {
	return Action{Type: ActCompleteSignature, Strokes: strokes, SignatureImage: image}
}

// WizardState is a snapshot of the session; it shares nothing with the
// service.
type WizardState struct {
	Step   models.Step        `json:"step"`
	Record models.GuestRecord `json:"record"`
	// Editing is set while a stored record is being re-entered.
	Editing bool `json:"editing"`

	CanProceed bool         `json:"canProceed"`
	Problems   []FieldError `json:"problems,omitempty"`

	IDCaptureEnabled  bool          `json:"idCaptureEnabled"`
	Facing            models.Facing `json:"facing"`
	CaptureError      string        `json:"captureError,omitempty"`
	CaptureGeneration uint64        `json:"captureGeneration"`

	// ScrollOrigin changes on every step change; the screen scrolls to the
	// top when it sees a new value.
	ScrollOrigin   uint64 `json:"scrollOrigin"`
	StorageWarning bool   `json:"storageWarning"`
	ClearURLParams bool   `json:"clearURLParams"`
}

// WizardService holds the one in-progress check-in of this kiosk. Every
// change goes through Dispatch.
type WizardService struct {
	mu    sync.Mutex
	store *RecordStore

	idCaptureEnabled bool
	Now              func() time.Time

	step              models.Step
	record            models.GuestRecord
	editing           bool
	facing            models.Facing
	captureErr        error
	captureGeneration uint64
	scrollOrigin      uint64
	storageWarning    bool
	clearURL          bool
}

func NewWizardService(store *RecordStore, idCaptureEnabled bool) *WizardService {
	return &WizardService{
		store:            store,
		idCaptureEnabled: idCaptureEnabled,
		Now:              time.Now,
		step:             models.StepWelcome,
		facing:           models.FacingRear,
	}
}

// State returns the current snapshot.
func (w *WizardService) State() WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// CaptureGeneration is the generation a capture started now belongs to.
func (w *WizardService) CaptureGeneration() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.captureGeneration
}

// Dispatch applies a to the session and returns the resulting state. On
// error the state is unchanged, except for CompleteSignature whose
// persistence failure is reported through StorageWarning instead.
func (w *WizardService) Dispatch(ctx context.Context, a Action) (WizardState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	log.Printf("➡️ Wizard.Dispatch %s at %s", a.Type, w.step)
	w.clearURL = false

	if err := w.reduceLocked(ctx, a); err != nil {
		log.Printf("⬅️ Wizard.Dispatch %s rejected: %v", a.Type, err)
		return w.snapshotLocked(), err
	}
	return w.snapshotLocked(), nil
}

func (w *WizardService) reduceLocked(ctx context.Context, a Action) error {
	switch a.Type {
	case ActStart:
		if w.step != models.StepWelcome {
			return ErrStepNotAllowed
		}
		// a finished guest never leaks into the next check-in
		if w.record.IsSigned() {
			w.record = models.GuestRecord{}
			w.editing = false
		}
		w.storageWarning = false
		if w.idCaptureEnabled {
			w.goTo(models.StepIDCapture)
		} else {
			w.goTo(models.StepRegistration)
		}
		return nil

	case ActSkipIDCapture:
		if w.step != models.StepIDCapture {
			return ErrStepNotAllowed
		}
		w.goTo(models.StepRegistration)
		return nil

	case ActNext:
		return w.nextLocked()

	case ActBack:
		return w.backLocked()

	case ActUpdateFields:
		if w.step != models.StepRegistration {
			return ErrStepNotAllowed
		}
		a.Patch.Apply(&w.record)
		ApplyComposite(&w.record, a.Email, a.Phone)
		return nil

	case ActOpenHistory:
		w.goTo(models.StepHistory)
		return nil

	case ActCloseHistory:
		if w.step != models.StepHistory {
			return ErrStepNotAllowed
		}
		w.goTo(models.StepWelcome)
		return nil

	case ActEditRecord:
		if w.step != models.StepHistory {
			return ErrStepNotAllowed
		}
		rec, err := w.store.Get(a.RecordID)
		if err != nil {
			return err
		}
		w.record = rec
		w.editing = true
		w.storageWarning = false
		w.goTo(models.StepRegistration)
		return nil

	case ActSwitchCamera:
		if w.step != models.StepIDCapture {
			return ErrStepNotAllowed
		}
		w.facing = w.facing.Opposite()
		w.captureErr = nil
		return nil

	case ActCaptureFailed:
		if !w.captureCurrentLocked(a) {
			return nil
		}
		w.captureErr = a.CaptureErr
		return nil

	case ActCaptureCompleted:
		if !w.captureCurrentLocked(a) {
			return nil
		}
		w.record.IDPhoto = a.Capture.Image
		if a.Capture.Extracted {
			f := a.Capture.Fields
			w.record.FirstName = f.FirstName
			w.record.LastName = f.LastName
			w.record.Nationality = f.Nationality
			w.record.Birthday = f.Birthday
		}
		w.goTo(models.StepRegistration)
		return nil

	case ActCompleteSignature:
		if w.step != models.StepSignature {
			return ErrStepNotAllowed
		}
		return w.signLocked(ctx, a)

	case ActReset:
		w.record = models.GuestRecord{}
		w.editing = false
		w.storageWarning = false
		w.captureErr = nil
		w.goTo(models.StepWelcome)
		w.clearURL = true
		return nil
	}
	return fmt.Errorf("unknown action %q", a.Type)
}

func (w *WizardService) nextLocked() error {
	switch w.step {
	case models.StepIDCapture:
		w.goTo(models.StepRegistration)
	case models.StepRegistration:
		if !RegistrationComplete(w.record) {
			return ErrIncompleteRegistration
		}
		w.goTo(models.StepRules)
	case models.StepRules:
		w.goTo(models.StepSignature)
	default:
		return ErrStepNotAllowed
	}
	return nil
}

func (w *WizardService) backLocked() error {
	switch w.step {
	case models.StepIDCapture:
		w.goTo(models.StepWelcome)
	case models.StepRegistration:
		switch {
		case w.editing:
			w.goTo(models.StepHistory)
		case w.idCaptureEnabled:
			w.goTo(models.StepIDCapture)
		default:
			w.goTo(models.StepWelcome)
		}
	case models.StepRules:
		w.goTo(models.StepRegistration)
	case models.StepSignature:
		w.goTo(models.StepRules)
	case models.StepHistory:
		w.goTo(models.StepWelcome)
	default:
		return ErrStepNotAllowed
	}
	return nil
}

func (w *WizardService) signLocked(ctx context.Context, a Action) error {
	sig, err := SignatureFromInput(a.Strokes, a.SignatureImage)
	if err != nil {
		return err
	}

	rec := w.record.Clone()
	rec.Sign(sig, w.Now())

	saved, err := w.store.Save(ctx, rec)
	if err != nil {
		// the record is signed and kept for this session either way
		log.Printf("⚠️ Wizard: signed record %s not persisted: %v", saved.ID, err)
		w.storageWarning = true
	} else {
		w.storageWarning = false
	}
	w.record = saved
	w.editing = false
	w.goTo(models.StepConfirmation)
	log.Printf("✅ Wizard: record %s signed", saved.ID)
	return nil
}

// captureCurrentLocked reports whether a capture result still belongs to the
// visible id-capture step.
func (w *WizardService) captureCurrentLocked(a Action) bool {
	if w.step != models.StepIDCapture || a.Generation != w.captureGeneration {
		log.Printf("⚠️ Wizard: dropping stale %s (generation %d, now %d at %s)",
			a.Type, a.Generation, w.captureGeneration, w.step)
		return false
	}
	return true
}

// goTo switches step. Entering or leaving id-capture starts a new capture
// generation so late results of the previous visit are ignored.
func (w *WizardService) goTo(step models.Step) {
	if step == models.StepIDCapture || w.step == models.StepIDCapture {
		w.captureGeneration++
		w.captureErr = nil
	}
	w.step = step
	w.scrollOrigin++
}

func (w *WizardService) snapshotLocked() WizardState {
	st := WizardState{
		Step:              w.step,
		Record:            w.record.Clone(),
		Editing:           w.editing,
		IDCaptureEnabled:  w.idCaptureEnabled,
		Facing:            w.facing,
		CaptureGeneration: w.captureGeneration,
		ScrollOrigin:      w.scrollOrigin,
		StorageWarning:    w.storageWarning,
		ClearURLParams:    w.clearURL,
	}
	if w.captureErr != nil {
		st.CaptureError = CameraErrorCode(w.captureErr)
		if st.CaptureError == "" {
			st.CaptureError = "unavailable"
		}
	}
	if w.step == models.StepRegistration {
		st.Problems = ValidateRegistration(w.record)
		st.CanProceed = len(st.Problems) == 0
	} else {
		st.CanProceed = w.step != models.StepSignature && w.step != models.StepConfirmation
	}
	return st
}
