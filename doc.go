// Package saorom formats and programs the identification EEPROM of a Firefly
// SAO (Simple Add-On) badge accessory over I2C.
//
// # References:
//
// SAO
//   - [SAO-1.69bis]: Shitty Add-On V1.69bis Standard (https://hackaday.io/project/175182-simple-add-ons-sao)
//   - [BadgeTeam-SAO]: SAO binary descriptor format, "LIFE" magic (https://github.com/badgeteam/sao-eeprom)
//
// EEPROM
//   - [24C32]: Microchip 24AA32A/24LC32A 32K I2C Serial EEPROM datasheet (https://ww1.microchip.com/downloads/en/DeviceDoc/21713M.pdf)
//   - [24C128]: Microchip 24AA128/24LC128 128K I2C Serial EEPROM datasheet (https://ww1.microchip.com/downloads/en/DeviceDoc/21191S.pdf)
//
// Host
//   - [FTDI-AN_255]: USB to I2C Example using the FT232H and FT201X devices (https://ftdichip.com/wp-content/uploads/2020/08/AN_255_USB-to-I2C-Example-using-the-FT232H-and-FT201X-devices.pdf)
//   - [MicroPython-I2C]: machine.I2C (https://docs.micropython.org/en/latest/library/machine.I2C.html)
package saorom
