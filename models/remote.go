package models

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"

	mysqldriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/ssh"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// RemoteConfig menentukan cara terhubung ke database presensi sumber:
// DSN langsung lewat RemoteURL, atau tunnel SSH jika UseSSH diset.
type RemoteConfig struct {
	RemoteURL string

	UseSSH      bool
	SSHHost     string
	SSHPort     int
	SSHUser     string
	SSHPassword string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
}

// RemoteDB membungkus koneksi baca ke database sumber beserta penutupnya.
// Pemanggil wajib memanggil Close setelah selesai supaya pool koneksi dan
// tunnel SSH-nya ikut dilepas.
type RemoteDB struct {
	*gorm.DB
	tutup func() error
}

func (r *RemoteDB) Close() error {
	if r.tutup == nil {
		return nil
	}
	return r.tutup()
}

var penghitungSSH uint64

// namaJaringanSSH memberi tiap tunnel nama jaringan dialer yang unik; dua
// tunnel yang hidup bersamaan tidak boleh saling menimpa dialer satu sama lain.
func namaJaringanSSH() string {
	return fmt.Sprintf("mysql+ssh-%d", atomic.AddUint64(&penghitungSSH, 1))
}

// ConnectRemote membuka koneksi baca ke database sumber. Koneksi ini tidak
// disimpan global; setiap pemanggil memegang handle-nya sendiri dan
// menutupnya saat selesai.
func ConnectRemote(cfg RemoteConfig) (*RemoteDB, error) {
	if cfg.UseSSH {
		return connectViaSSH(cfg)
	}
	if cfg.RemoteURL == "" {
		return nil, fmt.Errorf("remote_url wajib diisi jika tidak memakai SSH")
	}
	db, err := gorm.Open(mysql.Open(cfg.RemoteURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gagal terhubung ke database sumber: %w", err)
	}
	return &RemoteDB{DB: db, tutup: func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}}, nil
}

func connectViaSSH(cfg RemoteConfig) (*RemoteDB, error) {
	if cfg.SSHHost == "" || cfg.SSHUser == "" || cfg.DBUser == "" || cfg.DBPassword == "" {
		return nil, fmt.Errorf("mode SSH membutuhkan ssh_host, ssh_user, db_user dan db_password")
	}
	sshPort := cfg.SSHPort
	if sshPort == 0 {
		sshPort = 22
	}
	dbHost := cfg.DBHost
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := cfg.DBPort
	if dbPort == 0 {
		dbPort = 3306
	}
	dbName := cfg.DBName
	if dbName == "" {
		dbName = "bkd_presensi"
	}

	client, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", cfg.SSHHost, sshPort), &ssh.ClientConfig{
		User:            cfg.SSHUser,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.SSHPassword)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal membuka tunnel SSH: %w", err)
	}

	jaringan := namaJaringanSSH()
	mysqldriver.RegisterDialContext(jaringan, func(ctx context.Context, addr string) (net.Conn, error) {
		return client.Dial("tcp", addr)
	})

	dsn := fmt.Sprintf("%s:%s@%s(%s:%d)/%s", cfg.DBUser, cfg.DBPassword, jaringan, dbHost, dbPort, dbName)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		mysqldriver.DeregisterDialContext(jaringan)
		client.Close()
		return nil, fmt.Errorf("gagal terhubung lewat tunnel SSH: %w", err)
	}
	return &RemoteDB{DB: db, tutup: func() error {
		var errTutup error
		if sqlDB, err := db.DB(); err != nil {
			errTutup = err
		} else {
			errTutup = sqlDB.Close()
		}
		mysqldriver.DeregisterDialContext(jaringan)
		if err := client.Close(); errTutup == nil {
			errTutup = err
		}
		return errTutup
	}}, nil
}
