package handler

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"casewrite/internal/intake"
	"casewrite/internal/model"
	"casewrite/internal/render"
	"casewrite/internal/service"
)

// CaseSession is the single-flight analysis session behind the case routes.
type CaseSession interface {
	Submit(ctx context.Context, sub model.DocumentSubmission) (*model.WorkflowResult, error)
	Current() *service.Outcome
	Busy() bool
}

// Outcome status values reported by CurrentOutcome.
const (
	OutcomeIdle       = "idle"
	OutcomeProcessing = "processing"
	OutcomeSucceeded  = "succeeded"
	OutcomeFailed     = "failed"
)

// OutcomeResponse is the body of GET /api/v1/cases/current.
type OutcomeResponse struct {
	Status     string                `json:"status"`
	CaseID     string                `json:"case_id,omitempty"`
	FinishedAt *time.Time            `json:"finished_at,omitempty"`
	Result     *model.WorkflowResult `json:"result,omitempty"`
	Error      *errorEnvelope        `json:"error,omitempty"`
}

func renderPage(c *fiber.Ctx, r *render.Renderer, status int, p render.Page) error {
	var buf bytes.Buffer
	if err := r.Page(&buf, p); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

// pageFromOutcome shows the last finished outcome: its dashboard or its error alert.
func pageFromOutcome(o *service.Outcome) render.Page {
	if o == nil {
		return render.Page{}
	}
	p := render.Page{Form: render.FormState{CaseID: o.CaseID}}
	if o.Err != nil {
		p.Error = analysisMessage(o.Err)
		return p
	}
	p.Dashboard = render.Build(o.Result)
	return p
}

// IndexPage serves the intake form with the current outcome.
func IndexPage(r *render.Renderer, sess CaseSession) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := render.Page{Busy: sess.Busy()}
		if !p.Busy {
			p = pageFromOutcome(sess.Current())
		}
		return renderPage(c, r, fiber.StatusOK, p)
	}
}

// AnalyzeForm handles the HTML form post (multipart/form-data, fields caseId,
// documentContent and an optional file).
func AnalyzeForm(r *render.Renderer, sess CaseSession) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := intake.Form{
			CaseID: c.FormValue("caseId"),
			Text:   c.FormValue("documentContent"),
		}
		if fh, err := c.FormFile("file"); err == nil {
			form.File = fh
		}
		state := render.FormState{CaseID: form.CaseID, Text: form.Text}

		sub, err := intake.Collect(c.UserContext(), form)
		if err != nil {
			var verr *intake.ValidationError
			if !errors.As(err, &verr) {
				return err
			}
			state.Errors = verr.Fields
			return renderPage(c, r, statusForKind(service.Kind(err)), render.Page{Form: state})
		}

		res, err := sess.Submit(c.UserContext(), sub)
		if err != nil {
			return renderPage(c, r, statusForKind(service.Kind(err)), render.Page{
				Form:  state,
				Error: analysisMessage(err),
			})
		}
		return renderPage(c, r, fiber.StatusOK, render.Page{
			Form:      state,
			Dashboard: render.Build(res),
		})
	}
}

// AnalyzeJSON runs one analysis for a JSON submission.
//
// @Summary Analyze a case document
// @Tags cases
// @Accept json
// @Produce json
// @Param submission body model.DocumentSubmission true "Document submission"
// @Success 200 {object} model.WorkflowResult
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/v1/cases/analyze [post]
func AnalyzeJSON(sess CaseSession) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.DocumentSubmission
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON document submission")
		}

		sub, err := intake.FromJSON(in)
		if err != nil {
			return writeServiceError(c, err)
		}

		res, err := sess.Submit(c.UserContext(), sub)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CurrentOutcome reports the session's current-result slot.
//
// @Summary Current analysis outcome
// @Tags cases
// @Produce json
// @Success 200 {object} OutcomeResponse
// @Router /api/v1/cases/current [get]
func CurrentOutcome(sess CaseSession) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess.Busy() {
			return c.JSON(OutcomeResponse{Status: OutcomeProcessing})
		}
		o := sess.Current()
		if o == nil {
			return c.JSON(OutcomeResponse{Status: OutcomeIdle})
		}

		finished := o.FinishedAt
		resp := OutcomeResponse{CaseID: o.CaseID, FinishedAt: &finished}
		if o.Err != nil {
			resp.Status = OutcomeFailed
			resp.Error = &errorEnvelope{Code: service.Kind(o.Err), Message: analysisMessage(o.Err)}
		} else {
			resp.Status = OutcomeSucceeded
			resp.Result = o.Result
		}
		return c.JSON(resp)
	}
}
