package bundle_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"evolvex/internal/bundle"
	"evolvex/internal/domain"
)

func sample() domain.Bundle {
	return domain.Bundle{
		ID: "00112233aabbccdd",
		Steps: []domain.StepRecord{
			{Op: domain.OpRollingKey},
			{Op: domain.OpAESGCM, Nonce: bytes.Repeat([]byte{1}, 12), AAD: []byte("adap")},
			{Op: domain.OpChaCha, Nonce: bytes.Repeat([]byte{2}, 12), AAD: []byte("evolve")},
		},
		Data: []byte("ciphertext"),
	}
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	want := sample()
	raw, err := bundle.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := bundle.Unmarshal(raw)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.ID != want.ID || !bytes.Equal(got.Data, want.Data) || len(got.Steps) != len(want.Steps) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	for i := range want.Steps {
		w, g := want.Steps[i], got.Steps[i]
		if g.Op != w.Op || !bytes.Equal(g.Nonce, w.Nonce) || !bytes.Equal(g.AAD, w.AAD) {
			t.Fatalf("step %d mismatch: got %+v, want %+v", i, g, w)
		}
	}
}

func TestMarshal_OmitsFieldsForRatchetStep(t *testing.T) {
	raw, err := bundle.Marshal(sample())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded struct {
		Steps []map[string]any `json:"steps"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	first := decoded.Steps[0]
	if _, ok := first["nonce_b64"]; ok {
		t.Fatal("rolling_key step carries nonce_b64")
	}
	if _, ok := first["aad_b64"]; ok {
		t.Fatal("rolling_key step carries aad_b64")
	}
	if _, ok := decoded.Steps[1]["nonce_b64"]; !ok {
		t.Fatal("aead step missing nonce_b64")
	}
}

func TestUnmarshal_AbsentOptionalFieldsStayNil(t *testing.T) {
	raw := []byte(`{"id":"00112233aabbccdd","steps":[{"op":"rolling_key"}],"data_b64":""}`)
	b, err := bundle.Unmarshal(raw)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if b.Steps[0].Nonce != nil || b.Steps[0].AAD != nil {
		t.Fatalf("absent fields decoded non-nil: %+v", b.Steps[0])
	}
}

func TestUnmarshal_IgnoresLegacyTagField(t *testing.T) {
	raw := []byte(`{"id":"00112233aabbccdd","steps":[{"op":"rolling_key","tag_b64":"AAAA"}],"data_b64":""}`)
	if _, err := bundle.Unmarshal(raw); err != nil {
		t.Fatalf("Unmarshal rejected legacy tag_b64: %v", err)
	}
}

func TestUnmarshal_RejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":  "not json at all",
		"bad id":    `{"id":"xyz","steps":[],"data_b64":""}`,
		"short id":  `{"id":"abcd","steps":[],"data_b64":""}`,
		"no steps":  `{"id":"00112233aabbccdd","data_b64":""}`,
		"bad data":  `{"id":"00112233aabbccdd","steps":[],"data_b64":"%%%"}`,
		"bad nonce": `{"id":"00112233aabbccdd","steps":[{"op":"aesgcm_enc","nonce_b64":"%%%"}],"data_b64":""}`,
	}
	for name, raw := range cases {
		if _, err := bundle.Unmarshal([]byte(raw)); !errors.Is(err, domain.ErrMalformedBundle) {
			t.Fatalf("%s: got %v, want ErrMalformedBundle", name, err)
		}
	}
}

func TestNewID_Format(t *testing.T) {
	id, err := bundle.NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	if len(id) != 16 || strings.ToLower(id) != id {
		t.Fatalf("bad id %q", id)
	}
	other, err := bundle.NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	if id == other {
		t.Fatal("two ids collided")
	}
}
