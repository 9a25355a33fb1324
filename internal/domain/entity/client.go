package entity

import "time"

// Client cliente/receptor de facturación. DocumentNumber es la llave natural
// de deduplicación: registrar un cliente con un número ya existente actualiza
// el registro en sitio en lugar de crear un duplicado.
type Client struct {
	ID             string    `json:"id"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	Name           string    `json:"name"`
	TradeName      string    `json:"trade_name,omitempty"`
	NRC            string    `json:"nrc,omitempty"` // número de registro de contribuyente
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	Department     string    `json:"department,omitempty"`
	Municipality   string    `json:"municipality,omitempty"`

	// Banderas fiscales del receptor.
	Exempt           bool `json:"exempt"`            // exento de IVA
	RetentionSubject bool `json:"retention_subject"` // gran contribuyente, retiene 1%
	Exporter         bool `json:"exporter"`
	Government       bool `json:"government"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToReceptor construye la instantánea desnormalizada que viaja en la factura.
func (c *Client) ToReceptor() Receptor {
	return Receptor{
		ClientID:       c.ID,
		Name:           c.Name,
		DocumentType:   c.DocumentType,
		DocumentNumber: c.DocumentNumber,
		NRC:            c.NRC,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		Department:     c.Department,
		Municipality:   c.Municipality,
	}
}
