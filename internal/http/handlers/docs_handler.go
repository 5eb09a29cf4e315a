package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
	"pizzahouse/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GET /api/admin/bookings/:id/contract
func (h *Handler) GetContract(c *gin.Context) {
	h.serveText(c, h.docs(c).Contract)
}

// GET /api/admin/bookings/:id/receipt
func (h *Handler) GetReceipt(c *gin.Context) {
	h.serveText(c, h.docs(c).Receipt)
}

// GET /api/admin/bookings/:id/contract.pdf
func (h *Handler) GetContractPDF(c *gin.Context) {
	h.servePDF(c, h.docs(c).ContractPDF)
}

// GET /api/admin/bookings/:id/receipt.pdf
func (h *Handler) GetReceiptPDF(c *gin.Context) {
	h.servePDF(c, h.docs(c).ReceiptPDF)
}

func (h *Handler) serveText(c *gin.Context, gen func(context.Context, string) (services.Document, error)) {
	doc, err := gen(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if wantsDownload(c) {
		c.Header("Content-Disposition", contentDisposition("attachment", doc.Filename))
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.Body))
}

func (h *Handler) servePDF(c *gin.Context, gen func(context.Context, string) ([]byte, string, error)) {
	pdf, filename, err := gen(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	disposition := "inline"
	if wantsDownload(c) {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", contentDisposition(disposition, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// contentDisposition sends an ASCII filename plus the RFC 6266 UTF-8 form.
func contentDisposition(disposition, filename string) string {
	return disposition + `; filename="` + asciiFilename(filename) + `"; filename*=UTF-8''` + url.PathEscape(filename)
}

func asciiFilename(name string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || r < 0x20 || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, folded)
}

type recordDocumentRequest struct {
	Kind      string `json:"tipo"`
	BookingID string `json:"formulario_id"`
	Notes     string `json:"observacoes"`
}

// POST /api/admin/documents
func (h *Handler) RecordDocument(c *gin.Context) {
	var req recordDocumentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	kind, ok := models.ParseDocumentKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if !ok {
		RespondDomainError(c, domain.ValidationError{Field: "tipo", Msg: "use contrato ou recibo"})
		return
	}
	if strings.TrimSpace(req.BookingID) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "formulario_id", Msg: "campo obrigatório"})
		return
	}
	rec, err := h.docs(c).Record(c.Request.Context(), kind, req.BookingID, req.Notes)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GET /api/admin/documents?formulario_id=&limit=
func (h *Handler) ListDocuments(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 100)
	if !ok {
		RespondDomainError(c, domain.ValidationError{Field: "limit", Msg: "número inválido"})
		return
	}
	list, err := h.docs(c).History(c.Request.Context(), c.Query("formulario_id"), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list, "total": len(list)})
}
