package ethereum

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/x-xyz/swipebid/domain"
)

// ValidateMsgSignature checks a personal_sign signature of message against signer
func ValidateMsgSignature(message []byte, signature, signer string) (bool, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return false, xerrors.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}
	recovered, err := ecRecover(accounts.TextHash(message), sig)
	if err != nil {
		return false, err
	}
	return bytes.Equal(common.HexToAddress(signer).Bytes(), recovered.Bytes()), nil
}

// SignMessage produces a personal_sign signature with the wallet key
func (w *Wallet) SignMessage(message []byte) (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.key == nil {
		return "", domain.ErrWalletNotConnected
	}
	sig, err := crypto.Sign(accounts.TextHash(message), w.key)
	if err != nil {
		return "", err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

// ecRecover accepts both V=0/1 and V=27/28 eth_sign responses
func ecRecover(hash []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: signature must be %d bytes long", domain.ErrInvalidSignature, crypto.SignatureLength)
	}
	sig = append([]byte(nil), sig...)
	if sig[crypto.RecoveryIDOffset] < 27 {
		sig[crypto.RecoveryIDOffset] += 27
	}
	if sig[crypto.RecoveryIDOffset] != 27 && sig[crypto.RecoveryIDOffset] != 28 {
		return common.Address{}, fmt.Errorf("%w: V is not 27 or 28", domain.ErrInvalidSignature)
	}
	sig[crypto.RecoveryIDOffset] -= 27

	rpk, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*rpk), nil
}
