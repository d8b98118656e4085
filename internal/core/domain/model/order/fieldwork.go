package order

import (
	"time"

	"fieldops/internal/pkg/errs"
)

// FieldWork is the progressively filled sub-record of technician-captured
// progress: survey completion, installation start, photo references, and the
// customer's signature. It is written through merge patches during the Survey
// and Installation stages and survives reassignment so a replacement technician
// keeps the prior technician's partial work.
type FieldWork struct {
	SurveyCompleted       bool
	SurveyCompletedAt     *time.Time
	SurveyPhotos          []string
	InstallationStarted   bool
	InstallationStartedAt *time.Time
	InstallationPhotos    []string
	CustomerSignature     string
}

// FieldWorkPatch is a partial update of FieldWork. Nil fields leave the current
// value untouched; photo slices are appended, never replaced, so earlier
// captures are preserved.
type FieldWorkPatch struct {
	SurveyCompleted       *bool
	SurveyCompletedAt     *time.Time
	SurveyPhotos          []string
	InstallationStarted   *bool
	InstallationStartedAt *time.Time
	InstallationPhotos    []string
	CustomerSignature     *string
}

// Merge applies the patch onto the current field work and returns the result.
// The receiver is not modified.
func (fw FieldWork) Merge(patch FieldWorkPatch) FieldWork {
	merged := fw
	merged.SurveyPhotos = append([]string(nil), fw.SurveyPhotos...)
	merged.InstallationPhotos = append([]string(nil), fw.InstallationPhotos...)

	if patch.SurveyCompleted != nil {
		merged.SurveyCompleted = *patch.SurveyCompleted
	}
	if patch.SurveyCompletedAt != nil {
		at := *patch.SurveyCompletedAt
		merged.SurveyCompletedAt = &at
	}
	merged.SurveyPhotos = append(merged.SurveyPhotos, patch.SurveyPhotos...)

	if patch.InstallationStarted != nil {
		merged.InstallationStarted = *patch.InstallationStarted
	}
	if patch.InstallationStartedAt != nil {
		at := *patch.InstallationStartedAt
		merged.InstallationStartedAt = &at
	}
	merged.InstallationPhotos = append(merged.InstallationPhotos, patch.InstallationPhotos...)

	if patch.CustomerSignature != nil {
		merged.CustomerSignature = *patch.CustomerSignature
	}

	return merged
}

const (
	minQualityScore = 0
	maxQualityScore = 100
)

// InstallationDetails is the terminal-stage data written while transitioning
// into Completed: installed equipment serials, measured signal strength, test
// outcome, and the quality score from the closing checklist.
type InstallationDetails struct {
	ONTSerialNumber   string
	SignalStrengthDBm *float64
	TestResult        string
	QualityScore      *int
}

// InstallationDetailsPatch is a partial update of InstallationDetails.
// Nil fields leave the current value untouched.
type InstallationDetailsPatch struct {
	ONTSerialNumber   *string
	SignalStrengthDBm *float64
	TestResult        *string
	QualityScore      *int
}

// Validate checks the patch's value ranges. Quality scores are graded 0-100.
func (p InstallationDetailsPatch) Validate() error {
	if p.QualityScore != nil && (*p.QualityScore < minQualityScore || *p.QualityScore > maxQualityScore) {
		return errs.NewValueIsOutOfRangeError("qualityScore", *p.QualityScore, minQualityScore, maxQualityScore)
	}
	return nil
}

// Merge applies the patch onto the current details and returns the result.
// The receiver is not modified.
func (d InstallationDetails) Merge(patch InstallationDetailsPatch) InstallationDetails {
	merged := d

	if patch.ONTSerialNumber != nil {
		merged.ONTSerialNumber = *patch.ONTSerialNumber
	}
	if patch.SignalStrengthDBm != nil {
		v := *patch.SignalStrengthDBm
		merged.SignalStrengthDBm = &v
	}
	if patch.TestResult != nil {
		merged.TestResult = *patch.TestResult
	}
	if patch.QualityScore != nil {
		v := *patch.QualityScore
		merged.QualityScore = &v
	}

	return merged
}
