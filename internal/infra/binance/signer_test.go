package binance

import "testing"

func TestSigner_Sign(t *testing.T) {
	// Test vector from the Binance API documentation.
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	query := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	want := "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"

	signer := NewSigner("dummy-key", secret)
	if got := signer.Sign(query); got != want {
		t.Errorf("Sign() = %s, want %s", got, want)
	}
}

func TestSigner_Wipe(t *testing.T) {
	signer := NewSigner("key", "secret")
	signer.Wipe()
	if signer.APIKey() != "\x00\x00\x00" {
		t.Error("Wipe() should zero the api key bytes")
	}
	if got := signer.Sign("q"); got == "" {
		t.Error("Sign() after Wipe should still return a value (zeroed key)")
	}
}
