package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"musicshop/auth"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// SendSocketFunc returns true if data was successfully sent
type SendSocketFunc func([]byte) bool
type ConnectedClient struct {
	fun SendSocketFunc
}

// ConnectedClients is needed as a customer may be connected more than once
type ConnectedClients []*ConnectedClient

var (
	ConnectedCustomers = cmap.New[ConnectedClients]()
)

func addClient(id string, c *ConnectedClient) {
	ConnectedCustomers.Upsert(id, ConnectedClients{c}, func(exist bool, valueInMap, newValue ConnectedClients) ConnectedClients {
		if exist {
			return append(valueInMap, c)
		}
		return newValue
	})
}

func removeClient(id string, c *ConnectedClient) {
	ConnectedCustomers.Upsert(id, ConnectedClients{}, func(exist bool, valueInMap, newValue ConnectedClients) ConnectedClients {
		if !exist {
			return newValue
		}
		for _, oc := range valueInMap {
			if oc == c {
				continue
			}
			newValue = append(newValue, oc)
		}
		return newValue
	})
}

type socketMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// PushToCustomer delivers a notification text to every open socket of the
// customer. Offline customers simply read it later from their inbox.
func PushToCustomer(customerID uint64, text string) {
	clients, ok := ConnectedCustomers.Get(strconv.FormatUint(customerID, 10))
	if !ok {
		return
	}
	data, err := json.Marshal(socketMessage{Type: "notification", Text: text})
	if err != nil {
		return
	}
	for _, client := range clients {
		client.fun(data)
	}
}

// NotificationSocket keeps a socket open for the logged-in customer so new
// notifications arrive without polling
func NotificationSocket(c *gin.Context) {
	session := auth.LoadSession(c)
	customer := session.Customer()
	if customer.ID == 0 {
		c.JSON(http.StatusUnauthorized, LoginFirstResponse)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer conn.Close()

	isConnected := true
	id := strconv.FormatUint(customer.ID, 10)
	client := ConnectedClient{}
	client.fun = func(data []byte) bool {
		if !isConnected {
			return false
		}
		err := conn.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			log.Println("write err:", err)
			isConnected = false
			return false
		}
		return true
	}
	addClient(id, &client)
	defer removeClient(id, &client)

	// Nothing is expected from the client - reading just detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			isConnected = false
			return
		}
	}
}
