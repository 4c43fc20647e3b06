package nrf24

// Configuration for Raspberry Pi (32-bit) with the nRF24L01+
// module on SPI0 CE0, its CE line on GPIO 25, and IRQ on GPIO 24.

const (
	spiDevice = "/dev/spidev0.0"
	customCS  = 0
	cePin     = 25
	irqPin    = 24
)
