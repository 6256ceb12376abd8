package utils

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// RenderReceiptPDF loads the frontend receipt page in headless Chrome and
// prints it to PDF. Used for the email attachment; callers treat a failure
// as "no attachment".
func RenderReceiptPDF(orderID string) ([]byte, error) {
	q := url.Values{}
	q.Set("order", orderID)
	fullURL := fmt.Sprintf("%s?%s", receiptBaseURL(), q.Encode())

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(fullURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}

func receiptBaseURL() string {
	if u := os.Getenv("FRONTEND_RECEIPT_URL"); u != "" {
		return u
	}
	return "http://localhost:3000/receipt"
}
