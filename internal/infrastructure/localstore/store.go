package localstore

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/userdesk-api/pkg/logger"
)

// Claves del almacén local. Cada clave guarda un documento JSON completo.
const (
	KeySessionUser = "user"
	KeyUsers       = "users"
	KeyActivities  = "dashboard_recent_activities"
	KeyStats       = "dashboard_system_stats"
)

var bucketName = []byte("userdesk")

// Store almacén local key/value sobre bbolt: claves string con JSON como valor.
// Sustituye a una base de datos remota; toda la persistencia del sistema es local.
type Store struct {
	db  *bolt.DB
	log *logger.Logger
}

// Open abre (o crea) el archivo del almacén y garantiza el bucket raíz.
func Open(path string, log *logger.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("localstore: abrir %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore: crear bucket: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close cierra el archivo subyacente.
func (s *Store) Close() error {
	return s.db.Close()
}

// get deserializa el JSON de key en dest. Devuelve found=false si la clave no
// existe. Un valor corrupto se registra, se elimina y se trata como ausente:
// el sistema degrada a estado vacío/semilla, nunca propaga la corrupción.
func (s *Store) get(key string, dest any) (found bool, err error) {
	var raw []byte
	err = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("localstore: leer %q: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("valor persistido corrupto, se descarta")
		if delErr := s.delete(key); delErr != nil {
			return false, delErr
		}
		return false, nil
	}
	return true, nil
}

// put serializa v como JSON bajo key.
func (s *Store) put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: serializar %q: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("localstore: escribir %q: %w", key, err)
	}
	return nil
}

// delete elimina la clave (no es error si no existe).
func (s *Store) delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("localstore: eliminar %q: %w", key, err)
	}
	return nil
}
