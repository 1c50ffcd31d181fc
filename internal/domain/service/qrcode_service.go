package service

// QRCodeService generates and parses the handoff QR codes delivery agents
// scan when handing an order to the customer.
type QRCodeService interface {
	// GenerateHandoffQR renders a PNG QR code embedding the order code.
	GenerateHandoffQR(orderCode string) ([]byte, error)

	// ParseHandoffQR extracts the order code from scanned QR data.
	ParseHandoffQR(qrData string) (string, error)
}
