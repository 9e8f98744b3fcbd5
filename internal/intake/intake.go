package intake

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"casewrite/internal/model"
	"casewrite/internal/service"
)

// Messages shown next to the form.
const (
	MsgCaseIDRequired  = "Case ID is required."
	MsgContentRequired = "Please provide either text content OR upload a document."
	MsgInvalidFileType = "Invalid file type. Please upload JPG, PNG, WEBP, or PDF."
	MsgFileRead        = "Failed to process the file."
)

// Field keys used in ValidationError.Fields.
const (
	FieldCaseID  = "caseId"
	FieldContent = "documentContent"
	FieldFile    = "file"
)

var fieldOrder = []string{FieldCaseID, FieldContent, FieldFile}

// ValidationError carries one message per offending field.
// It unwraps to service.ErrValidation, or service.ErrEncoding when the file could not be read.
type ValidationError struct {
	Fields map[string]string
	cause  error
}

func (e *ValidationError) Error() string {
	msgs := lo.FilterMap(fieldOrder, func(f string, _ int) (string, bool) {
		m, ok := e.Fields[f]
		return m, ok
	})
	return strings.Join(msgs, " ")
}

func (e *ValidationError) Unwrap() error { return e.cause }

// Message returns the first message in form order.
func (e *ValidationError) Message() string {
	for _, f := range fieldOrder {
		if m, ok := e.Fields[f]; ok {
			return m
		}
	}
	return ""
}

func newFieldError(field, msg string, cause error) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}, cause: cause}
}

// Form is the raw HTML form input.
type Form struct {
	CaseID string
	Text   string
	File   *multipart.FileHeader
}

type formRules struct {
	CaseID  string `form:"caseId" validate:"required"`
	Content string `form:"documentContent" validate:"required_without=HasFile"`
	HasFile bool   `form:"file"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func checkRules(caseID, content string, hasFile bool) error {
	err := validate.Struct(formRules{
		CaseID:  strings.TrimSpace(caseID),
		Content: strings.TrimSpace(content),
		HasFile: hasFile,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case FieldCaseID:
			fields[FieldCaseID] = MsgCaseIDRequired
		case FieldContent:
			fields[FieldContent] = MsgContentRequired
		}
	}
	return &ValidationError{Fields: fields, cause: service.ErrValidation}
}

// Collect turns the HTML form into a submission.
// The upload type is decided by its content, not by its name or declared header.
func Collect(ctx context.Context, f Form) (model.DocumentSubmission, error) {
	if err := ctx.Err(); err != nil {
		return model.DocumentSubmission{}, err
	}
	if err := checkRules(f.CaseID, f.Text, f.File != nil); err != nil {
		return model.DocumentSubmission{}, err
	}

	sub := model.DocumentSubmission{
		CaseID:          strings.TrimSpace(f.CaseID),
		DocumentContent: f.Text,
	}
	if f.File == nil {
		return sub, nil
	}

	raw, err := readUpload(f.File)
	if err != nil {
		return model.DocumentSubmission{}, newFieldError(FieldFile, MsgFileRead, service.ErrEncoding)
	}
	fd, err := encodeFile(raw)
	if err != nil {
		return model.DocumentSubmission{}, err
	}
	sub.FileData = fd
	return sub, nil
}

// FromJSON applies the form rules to a submission posted to the API,
// where the file is already base64 text.
func FromJSON(sub model.DocumentSubmission) (model.DocumentSubmission, error) {
	if err := checkRules(sub.CaseID, sub.DocumentContent, sub.HasFile()); err != nil {
		return model.DocumentSubmission{}, err
	}

	out := model.DocumentSubmission{
		CaseID:          strings.TrimSpace(sub.CaseID),
		DocumentContent: sub.DocumentContent,
	}
	if !sub.HasFile() {
		return out, nil
	}

	raw, err := base64.StdEncoding.DecodeString(sub.FileData.Data)
	if err != nil {
		return model.DocumentSubmission{}, newFieldError(FieldFile, MsgFileRead, service.ErrEncoding)
	}
	fd, err := encodeFile(raw)
	if err != nil {
		return model.DocumentSubmission{}, err
	}
	out.FileData = fd
	return out, nil
}

// DetectMIMEType sniffs raw and returns the matching allow-listed type.
func DetectMIMEType(raw []byte) (string, bool) {
	detected := mimetype.Detect(raw)
	return lo.Find(model.AllowedMIMETypes, func(mt string) bool {
		return detected.Is(mt)
	})
}

func encodeFile(raw []byte) (*model.FileData, error) {
	mt, ok := DetectMIMEType(raw)
	if !ok {
		return nil, newFieldError(FieldFile, MsgInvalidFileType, service.ErrValidation)
	}
	return &model.FileData{
		MIMEType: mt,
		Data:     base64.StdEncoding.EncodeToString(raw),
	}, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
