package broker

import (
	"log"

	"github.com/nats-io/nats.go"
)

var conn *nats.Conn

// InitProducer connects to NATS. The error is returned rather than fatal so
// startup can continue with eventing disabled.
func InitProducer(url string) error {
	var err error
	conn, err = nats.Connect(url, nats.Name("todo-backend"))
	if err != nil {
		return err
	}
	log.Println("NATS producer initialized")
	return nil
}

func PublishMessage(subject string, value []byte) {
	if conn == nil {
		return
	}
	if err := conn.Publish(subject, value); err != nil {
		log.Printf("Failed to publish message to %s: %v", subject, err)
	}
}

func CloseProducer() {
	if conn != nil {
		if err := conn.Drain(); err != nil {
			log.Printf("Failed to drain NATS connection: %v", err)
		}
		conn = nil
	}
}
