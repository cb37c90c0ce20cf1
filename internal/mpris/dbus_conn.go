//go:build linux
// +build linux

package mpris

import (
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"
)

// BusConn defines the D-Bus operations needed to publish a player.
// This abstraction allows us to fake D-Bus interactions in tests.
type BusConn interface {
	// RequestName claims a well-known name on the bus
	RequestName(name string, flags dbus.RequestNameFlags) (dbus.RequestNameReply, error)

	// Export publishes the methods of v on path under iface
	Export(v interface{}, path dbus.ObjectPath, iface string) error

	// ExportProperties publishes org.freedesktop.DBus.Properties on path
	ExportProperties(path dbus.ObjectPath, props prop.Map) (PropertySetter, error)

	// Close closes the D-Bus connection
	Close() error
}

// PropertySetter updates exported properties and emits PropertiesChanged
type PropertySetter interface {
	SetMust(iface, property string, v interface{})
}

// StdBusConn is the real implementation using godbus
type StdBusConn struct {
	conn *dbus.Conn
}

// NewStdBusConn opens a private connection to the session bus
func NewStdBusConn() (BusConn, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdBusConn{conn: conn}, nil
}

// RequestName claims a well-known name on the bus
func (c *StdBusConn) RequestName(name string, flags dbus.RequestNameFlags) (dbus.RequestNameReply, error) {
	return c.conn.RequestName(name, flags)
}

// Export publishes the methods of v on path under iface
func (c *StdBusConn) Export(v interface{}, path dbus.ObjectPath, iface string) error {
	return c.conn.Export(v, path, iface)
}

// ExportProperties publishes org.freedesktop.DBus.Properties on path
func (c *StdBusConn) ExportProperties(path dbus.ObjectPath, props prop.Map) (PropertySetter, error) {
	return prop.Export(c.conn, path, props)
}

// Close closes the D-Bus connection
func (c *StdBusConn) Close() error {
	return c.conn.Close()
}
