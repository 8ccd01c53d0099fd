package system

import (
	"fmt"
	"net"
)

// PrimaryIPv4 returns the first global unicast IPv4 address on an interface
// that is up and not a loopback. Used to build the preview URL shown in the
// viewer's QR code.
func PrimaryIPv4() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("list interfaces: %w", err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch a := addr.(type) {
			case *net.IPNet:
				ip = a.IP
			case *net.IPAddr:
				ip = a.IP
			}
			if ip == nil {
				continue
			}
			if v4 := ip.To4(); v4 != nil && v4.IsGlobalUnicast() {
				return v4.String(), nil
			}
		}
	}
	return "", fmt.Errorf("no usable IPv4 address found")
}

// PreviewURL combines the primary address with the server's listen address,
// substituting the discovered host when the listener bound a wildcard.
func PreviewURL(listenAddr string) string {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return "http://" + listenAddr + "/"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		if ip, ipErr := PrimaryIPv4(); ipErr == nil {
			host = ip
		} else {
			host = "127.0.0.1"
		}
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}
