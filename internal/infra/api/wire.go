package api

import (
	"bytes"
	"encoding/json"
	"time"

	"stay-client/internal/domain/account"
	"stay-client/internal/domain/billing"
	"stay-client/internal/domain/booking"
)

// Wire shapes of the upstream API. Field names follow the server's JSON.

// apiTime accepts both full timestamps and bare calendar dates.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, booking.DateLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return &time.ParseError{Layout: time.RFC3339Nano, Value: s}
}

type unitDTO struct {
	ID                string     `json:"id"`
	MongoID           string     `json:"_id"`
	Numero            string     `json:"numero"`
	Tipo              string     `json:"tipo"`
	Descripcion       string     `json:"descripcion"`
	Piso              int        `json:"piso"`
	PrecioNoche       float64    `json:"precioNoche"`
	CapacidadPersonas int        `json:"capacidadPersonas"`
	NumeroCamas       int        `json:"numeroCamas"`
	Estado            string     `json:"estado"`
	Imagenes          []imageDTO `json:"imagenes"`
}

type imageDTO struct {
	URL         string `json:"url"`
	Descripcion string `json:"descripcion"`
}

func (d unitDTO) toDomain() (*booking.Unit, error) {
	images := make([]string, 0, len(d.Imagenes))
	for _, img := range d.Imagenes {
		images = append(images, img.URL)
	}
	return booking.NewUnit(booking.UnitSpec{
		ID:           nonEmpty(d.ID, d.MongoID),
		Number:       d.Numero,
		Kind:         d.Tipo,
		Floor:        d.Piso,
		Description:  d.Descripcion,
		NightlyRate:  booking.MoneyFromFloat(d.PrecioNoche),
		MaxOccupancy: d.CapacidadPersonas,
		Beds:         d.NumeroCamas,
		Status:       booking.UnitStatus(d.Estado),
		Images:       images,
	})
}

type availabilityDTO struct {
	Disponible bool `json:"disponible"`
}

type createReservationBody struct {
	DepartamentoID        string  `json:"departamentoId"`
	FechaInicio           string  `json:"fechaInicio"`
	FechaFin              string  `json:"fechaFin"`
	NumeroHuespedes       int     `json:"numeroHuespedes"`
	SolicitudesEspeciales *string `json:"solicitudesEspeciales,omitempty"`
	EsFeriado             bool    `json:"esFeriado"`
	NumeroNoches          int     `json:"numeroNoches"`
	PrecioNoche           float64 `json:"precioNoche"`
	Subtotal              float64 `json:"subtotal"`
	IVA                   float64 `json:"iva"`
	RecargoPorcentaje     float64 `json:"recargoPorcentaje"`
	RecargoFeriado        float64 `json:"recargoFeriado"`
	Total                 float64 `json:"total"`
}

type reservationDTO struct {
	ID                        string       `json:"id"`
	MongoID                   string       `json:"_id"`
	CodigoReserva             string       `json:"codigoReserva"`
	Departamento              Ref[unitDTO] `json:"departamento"`
	FechaInicio               apiTime      `json:"fechaInicio"`
	FechaFin                  apiTime      `json:"fechaFin"`
	NumeroNoches              int          `json:"numeroNoches"`
	NumeroHuespedes           int          `json:"numeroHuespedes"`
	PrecioNoche               float64      `json:"precioNoche"`
	Subtotal                  float64      `json:"subtotal"`
	DescuentoClienteFrecuente float64      `json:"descuentoClienteFrecuente"`
	IVA                       float64      `json:"iva"`
	EsFeriado                 bool         `json:"esFeriado"`
	RecargoPorcentaje         float64      `json:"recargoPorcentaje"`
	RecargoFeriado            float64      `json:"recargoFeriado"`
	Total                     float64      `json:"total"`
	Estado                    string       `json:"estado"`
	SolicitudesEspeciales     string       `json:"solicitudesEspeciales"`
	CreatedAt                 apiTime      `json:"createdAt"`
}

func (d reservationDTO) toDomain() *booking.Reservation {
	r := &booking.Reservation{
		ID:              nonEmpty(d.ID, d.MongoID),
		Code:            d.CodigoReserva,
		UnitID:          d.Departamento.ID(),
		Nights:          d.NumeroNoches,
		Guests:          d.NumeroHuespedes,
		NightlyRate:     booking.MoneyFromFloat(d.PrecioNoche),
		Subtotal:        booking.MoneyFromFloat(d.Subtotal),
		Discount:        booking.MoneyFromFloat(d.DescuentoClienteFrecuente),
		Tax:             booking.MoneyFromFloat(d.IVA),
		Holiday:         d.EsFeriado,
		SurchargeRate:   booking.RateFromPercent(d.RecargoPorcentaje),
		Surcharge:       booking.MoneyFromFloat(d.RecargoFeriado),
		Total:           booking.MoneyFromFloat(d.Total),
		Status:          booking.ReservationStatus(d.Estado),
		SpecialRequests: d.SolicitudesEspeciales,
		CreatedAt:       d.CreatedAt.Time,
	}
	if unit, ok := d.Departamento.Inline(); ok {
		r.UnitNumber = unit.Numero
	}
	if stay, err := booking.NewDateRange(d.FechaInicio.Time, d.FechaFin.Time); err == nil {
		r.Stay = stay
	}
	return r
}

type invoiceDTO struct {
	ID            string              `json:"id"`
	MongoID       string              `json:"_id"`
	NumeroFactura string              `json:"numeroFactura"`
	Reserva       Ref[reservationDTO] `json:"reserva"`
	FechaEmision  apiTime             `json:"fechaEmision"`
	Subtotal      float64             `json:"subtotal"`
	Descuentos    struct {
		ClienteFrecuente float64 `json:"clienteFrecuente"`
		Otros            float64 `json:"otros"`
	} `json:"descuentos"`
	IVA      float64 `json:"iva"`
	Recargos struct {
		Feriado float64 `json:"feriado"`
		Otros   float64 `json:"otros"`
	} `json:"recargos"`
	Danos []struct {
		Descripcion string  `json:"descripcion"`
		Monto       float64 `json:"monto"`
		Fecha       apiTime `json:"fecha"`
	} `json:"danos"`
	TotalDanos float64 `json:"totalDanos"`
	Total      float64 `json:"total"`
	EstadoPago string  `json:"estadoPago"`
	MetodoPago string  `json:"metodoPago"`
	Pagos      []struct {
		Fecha      apiTime `json:"fecha"`
		Monto      float64 `json:"monto"`
		Metodo     string  `json:"metodo"`
		Referencia string  `json:"referencia"`
	} `json:"pagos"`
	Observaciones string `json:"observaciones"`
}

func (d invoiceDTO) toDomain() *billing.Invoice {
	inv := &billing.Invoice{
		ID:                    nonEmpty(d.ID, d.MongoID),
		Number:                d.NumeroFactura,
		ReservationID:         d.Reserva.ID(),
		IssuedAt:              d.FechaEmision.Time,
		Subtotal:              booking.MoneyFromFloat(d.Subtotal),
		FrequentGuestDiscount: booking.MoneyFromFloat(d.Descuentos.ClienteFrecuente),
		OtherDiscounts:        booking.MoneyFromFloat(d.Descuentos.Otros),
		Tax:                   booking.MoneyFromFloat(d.IVA),
		HolidaySurcharge:      booking.MoneyFromFloat(d.Recargos.Feriado),
		OtherSurcharges:       booking.MoneyFromFloat(d.Recargos.Otros),
		DamagesTotal:          booking.MoneyFromFloat(d.TotalDanos),
		Total:                 booking.MoneyFromFloat(d.Total),
		Status:                billing.InvoiceStatus(d.EstadoPago),
		PaymentMethod:         d.MetodoPago,
		Notes:                 d.Observaciones,
	}
	if res, ok := d.Reserva.Inline(); ok {
		inv.ReservationCode = res.CodigoReserva
	}
	for _, dmg := range d.Danos {
		inv.Damages = append(inv.Damages, billing.Damage{
			Description: dmg.Descripcion,
			Amount:      booking.MoneyFromFloat(dmg.Monto),
			Date:        dmg.Fecha.Time,
		})
	}
	for _, p := range d.Pagos {
		inv.Payments = append(inv.Payments, billing.Payment{
			Date:      p.Fecha.Time,
			Amount:    booking.MoneyFromFloat(p.Monto),
			Method:    p.Metodo,
			Reference: p.Referencia,
		})
	}
	return inv
}

// amount is in minor units, as issued by the card processor.
type paymentIntentDTO struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          int64  `json:"amount"`
	Factura         struct {
		ID             string  `json:"id"`
		NumeroFactura  string  `json:"numeroFactura"`
		Total          float64 `json:"total"`
		MontoPendiente float64 `json:"montoPendiente"`
	} `json:"factura"`
}

func (d paymentIntentDTO) toDomain() *billing.PaymentIntent {
	return &billing.PaymentIntent{
		ID:            d.PaymentIntentID,
		ClientSecret:  d.ClientSecret,
		Amount:        booking.Money(d.Amount),
		InvoiceID:     d.Factura.ID,
		InvoiceNumber: d.Factura.NumeroFactura,
		InvoiceTotal:  booking.MoneyFromFloat(d.Factura.Total),
		Outstanding:   booking.MoneyFromFloat(d.Factura.MontoPendiente),
	}
}

type paymentConfirmationDTO struct {
	Factura       *invoiceDTO `json:"factura"`
	PaymentIntent struct {
		ID     string `json:"id"`
		Amount int64  `json:"amount"`
		Status string `json:"status"`
	} `json:"paymentIntent"`
}

func (d paymentConfirmationDTO) toDomain() *billing.PaymentConfirmation {
	c := &billing.PaymentConfirmation{
		IntentID: d.PaymentIntent.ID,
		Amount:   booking.Money(d.PaymentIntent.Amount),
		Status:   d.PaymentIntent.Status,
	}
	if d.Factura != nil {
		c.Invoice = d.Factura.toDomain()
	}
	return c
}

type userDTO struct {
	ID                 string  `json:"id"`
	MongoID            string  `json:"_id"`
	NombreUsuario      string  `json:"nombreUsuario"`
	Email              string  `json:"email"`
	Nombres            string  `json:"nombres"`
	Apellidos          string  `json:"apellidos"`
	Cedula             string  `json:"cedula"`
	FechaNacimiento    apiTime `json:"fechaNacimiento"`
	Telefono           string  `json:"telefono"`
	Direccion          string  `json:"direccion"`
	FotoPerfil         string  `json:"fotoPerfil"`
	Rol                string  `json:"rol"`
	TwoFactorEnabled   bool    `json:"twoFactorEnabled"`
	DobleAutenticacion bool    `json:"dobleAutenticacion"`
	EsFrecuente        bool    `json:"esFrecuente"`
}

func (d userDTO) toDomain() *account.User {
	return &account.User{
		ID:               nonEmpty(d.ID, d.MongoID),
		Username:         d.NombreUsuario,
		Email:            d.Email,
		FirstName:        d.Nombres,
		LastName:         d.Apellidos,
		NationalID:       d.Cedula,
		BirthDate:        d.FechaNacimiento.Time,
		Phone:            d.Telefono,
		Address:          d.Direccion,
		PhotoURL:         d.FotoPerfil,
		Role:             account.Role(d.Rol),
		TwoFactorEnabled: d.TwoFactorEnabled || d.DobleAutenticacion,
		FrequentGuest:    d.EsFrecuente,
	}
}

type loginResponse struct {
	Success           bool   `json:"success"`
	RequiresTwoFactor bool   `json:"requiresTwoFactor"`
	UserID            string `json:"userId"`
	Message           string `json:"message"`
	Data              *struct {
		Usuario userDTO `json:"usuario"`
		Token   string  `json:"token"`
	} `json:"data"`
}

type registerBody struct {
	NombreUsuario   string  `json:"nombreUsuario"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Nombres         string  `json:"nombres"`
	Apellidos       string  `json:"apellidos"`
	Cedula          string  `json:"cedula"`
	FechaNacimiento *string `json:"fechaNacimiento,omitempty"`
	Telefono        *string `json:"telefono,omitempty"`
	Direccion       *string `json:"direccion,omitempty"`
}

type profileBody struct {
	Nombres   *string `json:"nombres,omitempty"`
	Apellidos *string `json:"apellidos,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}

type twoFactorSetupDTO struct {
	QRCode string `json:"qrCode"`
	Secret string `json:"secret"`
}
