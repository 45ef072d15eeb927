package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-checkin/models"
	"hotel-checkin/storage"
)

var wizardSignedAt = time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)

func ptr(s string) *string { return &s }

func newTestWizard(t *testing.T, idCapture bool) (*WizardService, *RecordStore, *storage.MemoryStorage) {
	t.Helper()
	store, mem := newTestStore(t)
	w := NewWizardService(store, idCapture)
	w.Now = func() time.Time { return wizardSignedAt }
	return w, store, mem
}

func dispatch(t *testing.T, w *WizardService, a Action) WizardState {
	t.Helper()
	st, err := w.Dispatch(context.Background(), a)
	require.NoError(t, err, a.Type)
	return st
}

func fillRegistration(t *testing.T, w *WizardService, first, last string) WizardState {
	t.Helper()
	rec := completeRegistration()
	return dispatch(t, w, UpdateFields(models.GuestPatch{
		FirstName:     ptr(first),
		LastName:      ptr(last),
		Nationality:   ptr(rec.Nationality),
		Birthday:      ptr(rec.Birthday),
		TravelingFrom: ptr(rec.TravelingFrom),
		TravelingNext: ptr(rec.TravelingNext),
		CheckInDate:   ptr(rec.CheckInDate),
		CheckOutDate:  ptr(rec.CheckOutDate),
	}, &EmailParts{User: "ana", Domain: "example", Ext: "com"}, &PhoneParts{CountryCode: "52", Number: "5512345678"}))
}

var oneStroke = []Stroke{{{X: 10, Y: 10}, {X: 50, Y: 40}}}

func TestWizardHappyPathWithoutIDCapture(t *testing.T) {
	w, store, _ := newTestWizard(t, false)

	st := dispatch(t, w, Start())
	assert.Equal(t, models.StepRegistration, st.Step)
	assert.False(t, st.CanProceed)

	st = fillRegistration(t, w, "Ana", "Ruiz")
	assert.True(t, st.CanProceed)
	assert.Equal(t, "ana@example.com", st.Record.Email)
	assert.Equal(t, "+52 5512345678", st.Record.Cellphone)

	st = dispatch(t, w, Next())
	assert.Equal(t, models.StepRules, st.Step)
	st = dispatch(t, w, Next())
	assert.Equal(t, models.StepSignature, st.Step)

	st = dispatch(t, w, CompleteSignature(oneStroke, ""))
	assert.Equal(t, models.StepConfirmation, st.Step)
	assert.False(t, st.StorageWarning)
	assert.NotEmpty(t, st.Record.ID)
	assert.True(t, st.Record.IsSigned())
	assert.Equal(t, wizardSignedAt, *st.Record.AcceptedAt)

	require.Equal(t, 1, store.Len())
	stored := store.List()[0]
	assert.Equal(t, st.Record.ID, stored.ID)
	assert.Equal(t, "Ana", stored.FirstName)
	assert.NotEmpty(t, stored.Signature)

	hits := store.Search("rUiZ")
	require.Len(t, hits, 1)
	assert.Equal(t, stored.ID, hits[0].ID)
}

func TestWizardRegistrationBlocksIncompleteAndBadDates(t *testing.T) {
	w, _, _ := newTestWizard(t, false)
	dispatch(t, w, Start())

	_, err := w.Dispatch(context.Background(), Next())
	assert.ErrorIs(t, err, ErrIncompleteRegistration)

	fillRegistration(t, w, "Ana", "Ruiz")
	st := dispatch(t, w, UpdateFields(models.GuestPatch{CheckOutDate: ptr("2026-02-01")}, nil, nil))
	assert.False(t, st.CanProceed)
	assert.Contains(t, st.Problems, FieldError{Field: "checkOutDate", Problem: ProblemDateOrder})

	st, err = w.Dispatch(context.Background(), Next())
	assert.ErrorIs(t, err, ErrIncompleteRegistration)
	assert.Equal(t, models.StepRegistration, st.Step)
}

func TestWizardPartialEmailKeepsPreviousValue(t *testing.T) {
	w, _, _ := newTestWizard(t, false)
	dispatch(t, w, Start())
	fillRegistration(t, w, "Ana", "Ruiz")

	st := dispatch(t, w, UpdateFields(models.GuestPatch{}, &EmailParts{User: "ana", Domain: "other"}, nil))
	assert.Equal(t, "ana@example.com", st.Record.Email)
}

func TestWizardSignatureRequiresStroke(t *testing.T) {
	w, store, _ := newTestWizard(t, false)
	dispatch(t, w, Start())
	fillRegistration(t, w, "Ana", "Ruiz")
	dispatch(t, w, Next())
	dispatch(t, w, Next())

	st, err := w.Dispatch(context.Background(), CompleteSignature(nil, ""))
	assert.ErrorIs(t, err, ErrNoStrokes)
	assert.Equal(t, models.StepSignature, st.Step)
	assert.Equal(t, 0, store.Len())
	assert.False(t, st.Record.IsSigned())

	_, err = w.Dispatch(context.Background(), Next())
	assert.ErrorIs(t, err, ErrStepNotAllowed)
}

func TestWizardBackTransitions(t *testing.T) {
	w, _, _ := newTestWizard(t, true)

	st := dispatch(t, w, Start())
	assert.Equal(t, models.StepIDCapture, st.Step)
	st = dispatch(t, w, Back())
	assert.Equal(t, models.StepWelcome, st.Step)

	dispatch(t, w, Start())
	st = dispatch(t, w, SkipIDCapture())
	assert.Equal(t, models.StepRegistration, st.Step)
	fillRegistration(t, w, "Ana", "Ruiz")
	dispatch(t, w, Next())
	st = dispatch(t, w, Back())
	assert.Equal(t, models.StepRegistration, st.Step)
	assert.Equal(t, "Ana", st.Record.FirstName)

	dispatch(t, w, Next())
	dispatch(t, w, Next())
	st = dispatch(t, w, Back())
	assert.Equal(t, models.StepRules, st.Step)
}

func TestWizardScrollOriginChangesOnEveryTransition(t *testing.T) {
	w, _, _ := newTestWizard(t, false)
	before := w.State().ScrollOrigin

	st := dispatch(t, w, Start())
	assert.Greater(t, st.ScrollOrigin, before)

	same := dispatch(t, w, UpdateFields(models.GuestPatch{FirstName: ptr("Ana")}, nil, nil))
	assert.Equal(t, st.ScrollOrigin, same.ScrollOrigin)
}

func TestWizardEditFlowKeepsIDAndPosition(t *testing.T) {
	w, store, _ := newTestWizard(t, false)
	ctx := context.Background()
	older, _ := store.Save(ctx, signedRecord("Luis", "Perez"))
	target, _ := store.Save(ctx, signedRecord("Ana", "Ruiz"))
	_, _ = store.Save(ctx, signedRecord("Marta", "Gil"))

	dispatch(t, w, OpenHistory())
	st := dispatch(t, w, EditRecord(target.ID))
	assert.Equal(t, models.StepRegistration, st.Step)
	assert.True(t, st.Editing)
	assert.Equal(t, target.ID, st.Record.ID)
	assert.Equal(t, "Ana", st.Record.FirstName)

	dispatch(t, w, UpdateFields(models.GuestPatch{
		TravelingFrom: ptr("Madrid"),
		TravelingNext: ptr("Cancún"),
	}, nil, nil))
	dispatch(t, w, Next())
	dispatch(t, w, Next())
	st = dispatch(t, w, CompleteSignature(oneStroke, ""))

	assert.Equal(t, target.ID, st.Record.ID)
	assert.Equal(t, 3, store.Len())
	list := store.List()
	assert.Equal(t, target.ID, list[1].ID)
	assert.Equal(t, "Madrid", list[1].TravelingFrom)
	assert.Equal(t, older.ID, list[2].ID)
}

func TestWizardEditUnknownRecord(t *testing.T) {
	w, _, _ := newTestWizard(t, false)
	dispatch(t, w, OpenHistory())

	st, err := w.Dispatch(context.Background(), EditRecord("nope"))
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, models.StepHistory, st.Step)
}

func TestWizardResetClearsRecordAndURL(t *testing.T) {
	w, _, _ := newTestWizard(t, false)
	dispatch(t, w, Start())
	fillRegistration(t, w, "Ana", "Ruiz")

	st := dispatch(t, w, Reset())
	assert.Equal(t, models.StepWelcome, st.Step)
	assert.Equal(t, models.GuestRecord{}, st.Record)
	assert.True(t, st.ClearURLParams)

	st = dispatch(t, w, Start())
	assert.False(t, st.ClearURLParams)
}

func TestWizardStartAfterConfirmationBeginsFresh(t *testing.T) {
	w, store, _ := newTestWizard(t, false)
	dispatch(t, w, Start())
	fillRegistration(t, w, "Ana", "Ruiz")
	dispatch(t, w, Next())
	dispatch(t, w, Next())
	dispatch(t, w, CompleteSignature(oneStroke, ""))

	dispatch(t, w, OpenHistory())
	dispatch(t, w, CloseHistory())
	st := dispatch(t, w, Start())
	assert.Empty(t, st.Record.ID)
	assert.Empty(t, st.Record.FirstName)
	assert.Equal(t, 1, store.Len())
}

func TestWizardStorageFailureIsSurfacedNotFatal(t *testing.T) {
	w, store, mem := newTestWizard(t, false)
	mem.SetFailWrites(errors.New("quota exceeded"))

	dispatch(t, w, Start())
	fillRegistration(t, w, "Ana", "Ruiz")
	dispatch(t, w, Next())
	dispatch(t, w, Next())
	st := dispatch(t, w, CompleteSignature(oneStroke, ""))

	assert.Equal(t, models.StepConfirmation, st.Step)
	assert.True(t, st.StorageWarning)
	assert.Equal(t, 1, store.Len())
}

func TestWizardCameraDeniedDoesNotAdvance(t *testing.T) {
	w, _, _ := newTestWizard(t, true)
	st := dispatch(t, w, Start())

	res, err := NewIDCaptureService(nil).Process(context.Background(), NewUploadCamera(nil, "permission_denied"), st.Facing)
	require.Error(t, err)

	st = dispatch(t, w, CaptureFailed(err, st.CaptureGeneration))
	assert.Equal(t, models.StepIDCapture, st.Step)
	assert.Equal(t, "permission_denied", st.CaptureError)
	assert.Equal(t, models.GuestRecord{}, st.Record)
	assert.Empty(t, res.Image)
}

func TestWizardCaptureCompletedFillsFields(t *testing.T) {
	w, _, _ := newTestWizard(t, true)
	st := dispatch(t, w, Start())

	res := CaptureResult{
		Image:     "data:image/jpeg;base64,AAAA",
		Fields:    ExtractedFields{FirstName: "Ana", LastName: "Ruiz", Nationality: "MX", Birthday: "1990-04-12"},
		Extracted: true,
	}
	st = dispatch(t, w, CaptureCompleted(res, st.CaptureGeneration))
	assert.Equal(t, models.StepRegistration, st.Step)
	assert.Equal(t, "Ana", st.Record.FirstName)
	assert.Equal(t, "1990-04-12", st.Record.Birthday)
	assert.Equal(t, res.Image, st.Record.IDPhoto)
}

func TestWizardImageOnlyCaptureLeavesTextBlank(t *testing.T) {
	w, _, _ := newTestWizard(t, true)
	st := dispatch(t, w, Start())

	st = dispatch(t, w, CaptureCompleted(CaptureResult{Image: "data:image/jpeg;base64,AAAA"}, st.CaptureGeneration))
	assert.Equal(t, models.StepRegistration, st.Step)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", st.Record.IDPhoto)
	assert.Empty(t, st.Record.FirstName)
	assert.Empty(t, st.Record.Birthday)
}

func TestWizardDropsLateCaptureResult(t *testing.T) {
	w, _, _ := newTestWizard(t, true)
	st := dispatch(t, w, Start())
	gen := st.CaptureGeneration

	dispatch(t, w, SkipIDCapture())
	dispatch(t, w, UpdateFields(models.GuestPatch{FirstName: ptr("Typed")}, nil, nil))

	late := CaptureResult{Image: "data:image/jpeg;base64,AAAA", Fields: ExtractedFields{FirstName: "Stale"}, Extracted: true}
	st = dispatch(t, w, CaptureCompleted(late, gen))
	assert.Equal(t, models.StepRegistration, st.Step)
	assert.Equal(t, "Typed", st.Record.FirstName)
	assert.Empty(t, st.Record.IDPhoto)

	// back to id-capture is a new visit; the old generation is still stale
	dispatch(t, w, Back())
	st = dispatch(t, w, CaptureCompleted(late, gen))
	assert.Equal(t, models.StepIDCapture, st.Step)
	assert.Equal(t, "Typed", st.Record.FirstName)
}

func TestWizardSwitchCamera(t *testing.T) {
	w, _, _ := newTestWizard(t, true)
	st := dispatch(t, w, Start())
	assert.Equal(t, models.FacingRear, st.Facing)

	st = dispatch(t, w, SwitchCamera())
	assert.Equal(t, models.FacingFront, st.Facing)

	dispatch(t, w, SkipIDCapture())
	_, err := w.Dispatch(context.Background(), SwitchCamera())
	assert.ErrorIs(t, err, ErrStepNotAllowed)
}

func TestWizardStateIsASnapshot(t *testing.T) {
	w, _, _ := newTestWizard(t, false)
	dispatch(t, w, Start())
	st := fillRegistration(t, w, "Ana", "Ruiz")

	st.Record.FirstName = "Mutated"
	assert.Equal(t, "Ana", w.State().Record.FirstName)
}
