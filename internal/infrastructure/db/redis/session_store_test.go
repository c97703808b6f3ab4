package redis

import "testing"

func TestDecodeUser_Valid(t *testing.T) {
	raw := []byte(`{"id":"u1","name":"Alice","email":"alice@x.com","role":"marketer"}`)
	user, ok := decodeUser(raw)
	if !ok {
		t.Fatalf("expected decode to succeed")
	}
	if user.ID != "u1" || user.Role != "marketer" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestDecodeUser_TreatsMalformedAsAbsent(t *testing.T) {
	cases := map[string]string{
		"garbage":      `{not json`,
		"empty object": `{}`,
		"missing id":   `{"name":"Alice","email":"alice@x.com","role":"admin"}`,
		"bad role":     `{"id":"u1","name":"Alice","email":"alice@x.com","role":"superuser"}`,
		"wrong shape":  `[1,2,3]`,
	}

	for name, raw := range cases {
		if user, ok := decodeUser([]byte(raw)); ok {
			t.Fatalf("%s: expected absent, got %+v", name, user)
		}
	}
}
