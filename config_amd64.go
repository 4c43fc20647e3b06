package nrf24

// Configuration for Intel Edison in 64-bit mode with the radio on SPI5,
// CE on GPIO 14, and IRQ on GPIO 15.

const (
	spiDevice = "/dev/spidev5.1"
	customCS  = 110
	cePin     = 14
	irqPin    = 15
)
