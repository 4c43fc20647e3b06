package main

import (
	"fmt"
	"os"

	"github.com/ecc1/nrf24"
	log "github.com/sirupsen/logrus"
)

func main() {
	r := nrf24.Open(nrf24.DefaultConfig())
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
	defer r.Close()
	fmt.Printf("device: %s\n", r.Device())
	fmt.Printf("frequency: %d\n", r.Frequency())
	if err := nrf24.WriteDump(os.Stdout, r.Dump()); err != nil {
		log.Fatal(err)
	}
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
}
