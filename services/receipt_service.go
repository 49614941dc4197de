package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/fitstudio/marketplace/configs"
	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/models"
	"github.com/google/uuid"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`
<!DOCTYPE html>
<html>
<head><style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px; }
h1 { border-bottom: 2px solid #222; padding-bottom: 8px; }
table { width: 100%; border-collapse: collapse; margin-top: 24px; }
td { padding: 8px 0; border-bottom: 1px solid #ddd; }
td:last-child { text-align: right; }
.footer { margin-top: 40px; color: #777; font-size: 12px; }
</style></head>
<body>
<h1>Booking Receipt</h1>
<p>Receipt for {{.CustomerName}} — issued {{.IssuedAt}}</p>
<table>
<tr><td>Class</td><td>{{.ClassTitle}}</td></tr>
<tr><td>Studio</td><td>{{.StudioName}}</td></tr>
<tr><td>Date</td><td>{{.ClassDate}}</td></tr>
<tr><td>Amount Paid</td><td>{{printf "%.2f" .Amount}} {{.Currency}}</td></tr>
</table>
<p class="footer">Booking reference: {{.BookingID}}</p>
</body>
</html>`))

// GenerateBookingReceipt renders a PDF receipt for a settled payment and
// stores it on the payment record. Runs asynchronously after capture;
// failures are logged, never surfaced to the customer.
func GenerateBookingReceipt(paymentID uuid.UUID) {
	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		log.Printf("🔥 Receipt: payment %s not found: %v", paymentID, err)
		return
	}
	if payment.BookingID == nil {
		return
	}

	var booking models.Booking
	if err := database.DB.Preload("Customer").Preload("Class.Studio").First(&booking, "id = ?", *payment.BookingID).Error; err != nil {
		log.Printf("🔥 Receipt: booking lookup failed: %v", err)
		return
	}

	htmlData, err := renderReceiptHTML(booking, payment)
	if err != nil {
		log.Printf("🔥 Failed to render receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF: %v", err)
		return
	}

	uploadURL, err := uploadReceipt(pdfBytes, booking.CustomerID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload receipt: %v", err)
		return
	}

	payment.ReceiptURL = &uploadURL
	if err := database.DB.Save(&payment).Error; err != nil {
		log.Printf("🔥 Failed to store receipt URL for payment %s: %v", payment.ID, err)
		return
	}
	log.Printf("✅ Generated receipt for booking %s.", booking.ID)
}

func renderReceiptHTML(booking models.Booking, payment models.Payment) (string, error) {
	studioName := booking.Class.Studio.FullName
	if booking.Class.Studio.StudioName != nil {
		studioName = *booking.Class.Studio.StudioName
	}

	data := struct {
		CustomerName string
		ClassTitle   string
		StudioName   string
		ClassDate    string
		Amount       float64
		Currency     string
		BookingID    string
		IssuedAt     string
	}{
		CustomerName: booking.Customer.FullName,
		ClassTitle:   booking.Class.Title,
		StudioName:   studioName,
		ClassDate:    booking.Class.StartTime.Format("January 2, 2006 3:04 PM"),
		Amount:       payment.Amount,
		Currency:     payment.Currency,
		BookingID:    booking.ID.String(),
		IssuedAt:     time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := receiptTemplate.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceipt(fileBytes []byte, customerID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", customerID, uuid.New().String()),
		Folder:       "fit_marketplace_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
