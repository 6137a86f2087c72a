package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var MarketplaceABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	MarketplaceABI = _abi
}

var marketplaceABIJson = `
[
  {
    "inputs": [],
    "name": "getTotalListings",
    "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "uint256", "name": "offset", "type": "uint256"},
      {"internalType": "uint256", "name": "limit", "type": "uint256"}
    ],
    "name": "getActiveListings",
    "outputs": [
      {
        "components": [
          {"internalType": "uint256", "name": "tokenId", "type": "uint256"},
          {"internalType": "address", "name": "seller", "type": "address"},
          {"internalType": "string", "name": "name", "type": "string"},
          {"internalType": "string", "name": "description", "type": "string"},
          {"internalType": "string", "name": "imageURI", "type": "string"},
          {"internalType": "string[]", "name": "traits", "type": "string[]"},
          {"internalType": "uint256", "name": "basePrice", "type": "uint256"},
          {"internalType": "bool", "name": "active", "type": "bool"},
          {"internalType": "address", "name": "highestBidder", "type": "address"},
          {"internalType": "uint256", "name": "highestBid", "type": "uint256"}
        ],
        "internalType": "struct NFTMarketplace.Listing[]",
        "name": "",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "address", "name": "bidder", "type": "address"}],
    "name": "getWonNFTsDetails",
    "outputs": [
      {
        "components": [
          {"internalType": "uint256", "name": "tokenId", "type": "uint256"},
          {"internalType": "address", "name": "seller", "type": "address"},
          {"internalType": "string", "name": "name", "type": "string"},
          {"internalType": "string", "name": "description", "type": "string"},
          {"internalType": "string", "name": "imageURI", "type": "string"},
          {"internalType": "string[]", "name": "traits", "type": "string[]"},
          {"internalType": "uint256", "name": "basePrice", "type": "uint256"},
          {"internalType": "bool", "name": "active", "type": "bool"},
          {"internalType": "address", "name": "highestBidder", "type": "address"},
          {"internalType": "uint256", "name": "highestBid", "type": "uint256"}
        ],
        "internalType": "struct NFTMarketplace.Listing[]",
        "name": "",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "string", "name": "name", "type": "string"},
      {"internalType": "string", "name": "description", "type": "string"},
      {"internalType": "string", "name": "metadataURI", "type": "string"},
      {"internalType": "string[]", "name": "traits", "type": "string[]"},
      {"internalType": "uint256", "name": "basePrice", "type": "uint256"}
    ],
    "name": "createNFT",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "uint256", "name": "tokenId", "type": "uint256"}],
    "name": "placeBid",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "uint256", "name": "tokenId", "type": "uint256"}],
    "name": "endBidding",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]
`
