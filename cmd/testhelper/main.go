// Command testhelper drives the SDK from the command line for manual and
// integration testing: generating VAPID keys and sending a notification to
// a real subscription.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	webpush "github.com/pushforge/webpush-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <generate-keys|send> [args]")
	}

	switch os.Args[1] {
	case "generate-keys":
		generateKeys()
	case "send":
		send()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func generateKeys() {
	key, err := webpush.GenerateSigningKey()
	if err != nil {
		fatal("generate signing key: %v", err)
	}

	privateKey, err := key.PrivateKeyB64()
	if err != nil {
		fatal("encode private key: %v", err)
	}

	out := map[string]string{
		"privateKey": privateKey,
		"publicKey":  key.PublicKeyB64(),
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode keys: %v", err)
	}
}

// send reads a PushSubscription JSON from stdin and delivers the payload
// given as the second argument (or a default test payload).
func send() {
	key, err := webpush.ParseSigningKey(os.Getenv("VAPID_PRIVATE_KEY"))
	if err != nil {
		fatal("parse VAPID_PRIVATE_KEY: %v", err)
	}

	subject := os.Getenv("VAPID_SUBJECT")
	if subject == "" {
		subject = "mailto:ops@example.com"
	}

	client, err := webpush.New(subject, key)
	if err != nil {
		fatal("create client: %v", err)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read subscription from stdin: %v", err)
	}
	sub, err := webpush.ParseSubscription(data)
	if err != nil {
		fatal("parse subscription: %v", err)
	}

	payload := []byte(`{"title": "testhelper", "body": "integration test"}`)
	if len(os.Args) > 2 {
		payload = []byte(os.Args[2])
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	state, err := client.Send(ctx, &webpush.Notification{
		Subscription: sub,
		Payload:      payload,
		TTL:          time.Minute,
	})
	if err != nil {
		fatal("send: %v", err)
	}

	fmt.Println(state)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
