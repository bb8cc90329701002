package server

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"golang.org/x/crypto/ssh"
	log "gopkg.in/inconshreveable/log15.v2"
)

var (
	configBucket = []byte("config")
	configSSHKey = []byte("ssh-private-key")
)

// Database keeps server state that must survive restarts, so that players
// see the same host key every time they connect.
type Database struct {
	*bolt.DB
}

func NewDatabase(loc string) (*Database, error) {
	b, err := bolt.Open(loc, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &Database{DB: b}, nil
}

// HostKey returns the stored host key, generating and storing one on first
// use.
func (db *Database) HostKey() (ssh.Signer, error) {
	var stored []byte
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(configBucket)
		if b == nil {
			return nil
		}
		if key := b.Get(configSSHKey); key != nil {
			stored = append([]byte(nil), key...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if stored != nil {
		signer, err := ssh.ParsePrivateKey(stored)
		if err == nil {
			return signer, nil
		}
		log.Warn(fmt.Sprintf("stored host key is unusable, generating a new one: %v", err))
	}

	val, err := genPrivateKey()
	if err != nil {
		return nil, err
	}
	signer, err := ssh.ParsePrivateKey(val)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(configBucket)
		if err != nil {
			return err
		}
		return b.Put(configSSHKey, val)
	})
	if err != nil {
		return nil, err
	}
	return signer, nil
}

func genPrivateKey() ([]byte, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	key := x509.MarshalPKCS1PrivateKey(priv)
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: key}), nil
}
