package nrf24

// Configuration for Raspberry Pi 3/4 in 64-bit mode with the nRF24L01+
// module on SPI0 CE0, its CE line on GPIO 25, and IRQ on GPIO 24.

const (
	spiDevice = "/dev/spidev0.0"
	customCS  = 0
	cePin     = 25
	irqPin    = 24
)
