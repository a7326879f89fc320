package request

import (
	"encoding/json"
	"testing"
	"time"

	"linkpago/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

func TestCreatePaymentRequest_ToInput(t *testing.T) {
	var r CreatePaymentRequest
	if err := json.Unmarshal([]byte(`{"amount":"1500.50","description":" Pedido 12 ","merchantId":" m-1 ","expiresInHours":2}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := r.ToInput()
	if in.MerchantID != "m-1" || in.Description != "Pedido 12" || in.ExpiresInHours != 2 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.Amount.Equal(decimal.RequireFromString("1500.5")) {
		t.Fatalf("unexpected amount: %s", in.Amount)
	}

	var numeric CreatePaymentRequest
	if err := json.Unmarshal([]byte(`{"amount":1000}`), &numeric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !numeric.Amount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected amount: %s", numeric.Amount)
	}
}

func TestUpdateStatusRequest_ToOverride(t *testing.T) {
	r := UpdateStatusRequest{
		Status: " completado ",
		PaymentInfo: &PaymentInfoRequest{
			Holder: "Juan Perez",
			Origin: &PaymentOriginRequest{Holder: "Juan Perez", Account: "2850590940090418135201", Bank: "Galicia"},
		},
	}

	o := r.ToOverride()
	if o.Status != entities.PaymentStatusCompletado {
		t.Fatalf("unexpected status: %s", o.Status)
	}
	if o.PaymentInfo == nil || o.PaymentInfo.Origin == nil || o.PaymentInfo.Origin.Bank != "Galicia" {
		t.Fatalf("unexpected payment info: %+v", o.PaymentInfo)
	}

	if o.PaymentInfo.Closure != nil {
		t.Fatalf("expected no closure, got %+v", o.PaymentInfo.Closure)
	}

	if got := (UpdateStatusRequest{Status: "expirado"}).ToOverride(); got.PaymentInfo != nil {
		t.Fatalf("expected nil payment info, got %+v", got.PaymentInfo)
	}
}

func TestUpdateStatusRequest_ToOverrideClosure(t *testing.T) {
	body := `{"status":"cancelado","paymentInfo":{"closure":{"bloqueado":true,"cerradoEn":"2026-03-01T09:00:00-03:00"}}}`
	var r UpdateStatusRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o := r.ToOverride()
	if o.PaymentInfo == nil || o.PaymentInfo.Closure == nil {
		t.Fatalf("expected closure, got %+v", o.PaymentInfo)
	}
	want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !o.PaymentInfo.Closure.Blocked || !o.PaymentInfo.Closure.ClosedAt.Equal(want) || o.PaymentInfo.Closure.ClosedAt.Location() != time.UTC {
		t.Fatalf("unexpected closure: %+v", o.PaymentInfo.Closure)
	}

	unblock := UpdateStatusRequest{Status: "pendiente", PaymentInfo: &PaymentInfoRequest{Closure: &PaymentClosureRequest{}}}
	if cl := unblock.ToOverride().PaymentInfo.Closure; cl == nil || cl.Blocked || !cl.ClosedAt.IsZero() {
		t.Fatalf("unexpected closure: %+v", cl)
	}
}

func TestCollectionReceivedRequest_ToEntity(t *testing.T) {
	body := `{
		"collection_id": "col-1",
		"collection_account": "0000003100012345678901",
		"customer_id": "cliente-ab12cd34",
		"customer_account": "2850590940090418135201",
		"amount": "1000.00",
		"customer_name": "Juan Perez",
		"customer_tax_id": "20123456789"
	}`
	var r CollectionReceivedRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := r.ToEntity()
	if c.OrderID() != "ab12cd34" || c.IsValidationPing() {
		t.Fatalf("unexpected collection: %+v", c)
	}
	if c.Origin().Bank != "Desconocido" {
		t.Fatalf("unexpected origin: %+v", c.Origin())
	}
}

func TestPaymentStatusValidation(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := binding.Validator.ValidateStruct(UpdateStatusRequest{Status: "rechazado"}); err != nil {
		t.Fatalf("expected valid status, got %v", err)
	}
	if err := binding.Validator.ValidateStruct(UpdateStatusRequest{Status: "sobrante"}); err == nil {
		t.Fatalf("expected validation error for unknown status")
	}
	if err := binding.Validator.ValidateStruct(UpdateStatusRequest{}); err == nil {
		t.Fatalf("expected validation error for empty status")
	}
}

func TestMerchantRequests(t *testing.T) {
	m := MerchantCreateRequest{Name: "Tienda", CucuruAPIKey: "k", CucuruCollectorID: "c", AliasPrefix: "tienda"}.ToEntity()
	if m.Name != "Tienda" || m.AliasPrefix != "tienda" {
		t.Fatalf("unexpected merchant: %+v", m)
	}

	hours := 3.0
	patch := MerchantUpdateRequest{DefaultExpiresInHours: &hours}.ToPatch()
	if patch.DefaultExpiresInHours == nil || *patch.DefaultExpiresInHours != 3 || patch.Name != nil {
		t.Fatalf("unexpected patch: %+v", patch)
	}
}
