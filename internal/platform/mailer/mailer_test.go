// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package mailer

import (
	"bufio"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestSend_StartTLSRelay drives a full submission against an in-process relay
that advertises STARTTLS. The relay upgrades the connection with a
self-signed certificate and captures the message that arrives over TLS, so
the test fails if the handshake is skipped or misconfigured.
*/
func TestSend_StartTLSRelay(t *testing.T) {
	cert, pool := newRelayCertificate(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	messages := make(chan string, 1)
	go serveRelaySession(listener, cert, messages)

	host, portText, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portText)
	require.NoError(t, err)

	m := NewSMTP(host, port, "", "", "noreply@digitalmary.org")
	m.tlsConfig = &tls.Config{
		ServerName: host,
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = m.Send(ctx, "curators@digitalmary.org", "New challenge", "A visitor disputes the findspot.")
	require.NoError(t, err)

	select {
	case message := <-messages:
		assert.Contains(t, message, "Subject: New challenge")
		assert.Contains(t, message, "To: curators@digitalmary.org")
		assert.Contains(t, message, "A visitor disputes the findspot.")
	case <-time.After(5 * time.Second):
		t.Fatal("relay never received the message")
	}
}

// TestStartTLSConfig_VerifiesRelayHost pins the default handshake settings:
// the relay certificate must be checked against the configured host name.
func TestStartTLSConfig_VerifiesRelayHost(t *testing.T) {
	m := NewSMTP("smtp.digitalmary.org", 587, "courier", "secret", "noreply@digitalmary.org")

	cfg := m.starttlsConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "smtp.digitalmary.org", cfg.ServerName)
	assert.False(t, cfg.InsecureSkipVerify)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
}

func TestSend_Unconfigured(t *testing.T) {
	m := NewSMTP("", 0, "", "", "noreply@digitalmary.org")

	assert.False(t, m.Configured())
	assert.Error(t, m.Send(context.Background(), "curators@digitalmary.org", "subject", "body"))
}

// newRelayCertificate issues a self-signed certificate for 127.0.0.1 and a
// root pool that trusts it.
func newRelayCertificate(t *testing.T) (tls.Certificate, *x509.CertPool) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "relay"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)

	leaf, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	pool := x509.NewCertPool()
	pool.AddCert(leaf)

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key, Leaf: leaf}, pool
}

// serveRelaySession accepts one connection and speaks just enough SMTP for a
// single submission: greeting, EHLO with STARTTLS, the TLS upgrade, then
// MAIL/RCPT/DATA/QUIT. The received DATA payload is sent on messages.
func serveRelaySession(listener net.Listener, cert tls.Certificate, messages chan<- string) {
	conn, err := listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	reader := bufio.NewReader(conn)
	fmt.Fprintf(conn, "220 relay ready\r\n")

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		command := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(command, "EHLO"), strings.HasPrefix(command, "HELO"):
			fmt.Fprintf(conn, "250-relay\r\n250 STARTTLS\r\n")

		case command == "STARTTLS":
			fmt.Fprintf(conn, "220 ready to start TLS\r\n")
			tlsConn := tls.Server(conn, &tls.Config{
				Certificates: []tls.Certificate{cert},
				MinVersion:   tls.VersionTLS12,
			})
			conn = tlsConn
			reader = bufio.NewReader(conn)

		case strings.HasPrefix(command, "MAIL FROM"), strings.HasPrefix(command, "RCPT TO"):
			fmt.Fprintf(conn, "250 ok\r\n")

		case command == "DATA":
			fmt.Fprintf(conn, "354 end data with <CRLF>.<CRLF>\r\n")
			var payload strings.Builder
			for {
				dataLine, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				if strings.TrimRight(dataLine, "\r\n") == "." {
					break
				}
				payload.WriteString(dataLine)
			}
			fmt.Fprintf(conn, "250 accepted\r\n")
			messages <- payload.String()

		case command == "QUIT":
			fmt.Fprintf(conn, "221 bye\r\n")
			return

		default:
			fmt.Fprintf(conn, "250 ok\r\n")
		}
	}
}
