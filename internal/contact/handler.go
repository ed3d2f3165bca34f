// Package contact implements the page's contact form. Submissions are only
// acknowledged: nothing is sent, stored or logged.
package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessMessage is shown after every submission.
const SuccessMessage = "Thanks! I'll get back to you soon."

// Submission is the transient content of the form.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Acknowledgment is what the visitor sees after submitting.
type Acknowledgment struct {
	Success bool
	Message string
}

// Form describes the fields rendered by the contact templates.
type Form struct {
	Title       string
	Action      string
	SubmitLabel string
}

// DefaultForm is the form as rendered on the page.
var DefaultForm = Form{
	Title:       "Get in touch",
	Action:      "/contact",
	SubmitLabel: "Send message",
}

// Handler serves the contact form fragments.
type Handler struct {
	form Form
}

func NewHandler() *Handler {
	return &Handler{form: DefaultForm}
}

// Form returns the form descriptor.
func (h *Handler) Form() Form {
	return h.form
}

// Submit accepts any values, including empty ones, and acknowledges them.
func (h *Handler) Submit(_ Submission) Acknowledgment {
	return Acknowledgment{Success: true, Message: SuccessMessage}
}

// ShowForm handles GET /contact-form.
func (h *Handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", h.form)
}

// HandleSubmit handles POST /contact.
func (h *Handler) HandleSubmit(c *gin.Context) {
	ack := h.Submit(Submission{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	})
	c.HTML(http.StatusOK, "contact-success.html", ack)
}

// RegisterRoutes mounts the form endpoints.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	// Form fragment route
	r.GET("/contact-form", h.ShowForm)
	// Submit route
	r.POST("/contact", h.HandleSubmit)
}
